package datasheet

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"
)

const boundarySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
	<rect id="rect1" x="10" y="10" width="50" height="50" fill="none" stroke="black"/>
	<path id="path1" d="M10 10L60 60" fill="none" stroke="red"/>
	<text id="label1" x="10" y="70">I (A)</text>
</svg>`

func TestDigitize(t *testing.T) {
	res, err := Digitize(strings.NewReader(boundarySVG), testConfig(3))
	test.Error(t, err)
	test.T(t, res.Len(), 1)
	test.T(t, res.Calibration.IDs(), []string{"rect1"})

	vals, err := res.Values(0)
	test.Error(t, err)
	want := Values{
		X: []float64{0.0, 25.0, 50.0},
		Y: []float64{50.0, 25.0, 0.0},
	}
	if diff := cmp.Diff(want, vals, approx); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestDigitizeFile(t *testing.T) {
	filename := writeFile(t, "plot.svg", boundarySVG)
	cfg := testConfig(5)
	cfg.Workers = 4

	res, err := DigitizeFile(filename, cfg)
	test.Error(t, err)
	s, err := res.Curve(0)
	test.Error(t, err)
	test.String(t, s.RectID, "rect1")
	test.T(t, s.Len(), 5)

	_, err = DigitizeFile(filepath.Join(t.TempDir(), "missing.svg"), cfg)
	test.That(t, err != nil, "expected error")
}

func TestDigitizeErrors(t *testing.T) {
	_, err := Digitize(strings.NewReader(boundarySVG), DefaultConfig())
	test.That(t, errors.Is(err, ErrConfiguration), err)

	_, err = Digitize(strings.NewReader(`<svg><path id="path1" d="M0 0L1 1"/></svg>`), testConfig(3))
	test.That(t, errors.Is(err, ErrCalibration), err)

	_, err = Digitize(strings.NewReader(`<svg><rect id="rect1" width="0" height="10"/></svg>`), testConfig(3))
	test.That(t, errors.Is(err, ErrCalibration), err)

	_, err = Digitize(strings.NewReader(`<html></html>`), testConfig(3))
	test.That(t, err != nil, "expected error")
}

func TestDigitizePartial(t *testing.T) {
	svg := `<svg>
	<rect id="rect1" x="10" y="10" width="50" height="50"/>
	<path id="path1" d="M10 10L60 60"/>
	<path id="path2" d="M20 20"/>
	<path id="path3" d="M10 60L60 10"/>
</svg>`
	res, err := Digitize(strings.NewReader(svg), testConfig(3))
	test.That(t, errors.Is(err, ErrSampling), err)
	test.T(t, res.Len(), 1)

	cfg := testConfig(3)
	cfg.Workers = 2
	res, err = Digitize(strings.NewReader(svg), cfg)
	test.That(t, errors.Is(err, ErrSampling), err)
	test.T(t, res.Len(), 0)
}

func TestDigitizeNoCurves(t *testing.T) {
	res, err := DigitizeElements([]Element{testElement("rect1", "M0 0H10V10H0z")}, testConfig(3))
	test.Error(t, err)
	test.T(t, res.Len(), 0)
	test.T(t, res.Calibration.Len(), 1)
}
