package datasheet

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadConfigYAML(t *testing.T) {
	filename := writeFile(t, "config.yaml", `
npoints: 5
width: 100
x: 10
workers: 2
rect_params:
  rect2:
    height: 20
    y: -5
path_params:
  "0":
    height: 10
    rect_id: rect2
  path_b:
    y: 1.5
`)
	cfg, err := LoadConfig(filename)
	test.Error(t, err)
	test.T(t, cfg.Npoints, 5)
	test.T(t, cfg.Workers, 2)
	test.Float(t, cfg.Width, 100.0)
	test.Float(t, cfg.Height, 50.0)
	test.Float(t, cfg.X, 10.0)
	test.Float(t, cfg.Y, 0.0)

	test.T(t, cfg.RectExtent("rect1"), Extent{10.0, 0.0, 100.0, 50.0})
	test.T(t, cfg.RectExtent("rect2"), Extent{10.0, -5.0, 100.0, 20.0})

	y, height, rectID := cfg.CurveParams(Curve{Index: 0, ID: "path_a"})
	test.Float(t, y, 0.0)
	test.Float(t, height, 10.0)
	test.String(t, rectID, "rect2")

	y, height, rectID = cfg.CurveParams(Curve{Index: 1, ID: "path_b"})
	test.Float(t, y, 1.5)
	test.Float(t, height, 50.0)
	test.String(t, rectID, "")
}

func TestLoadConfigTOML(t *testing.T) {
	filename := writeFile(t, "config.toml", `
npoints = 3
height = 25.0

[rect_params.rect1]
width = 10.0

[path_params.path1]
rect_id = "rect1"
`)
	cfg, err := LoadConfig(filename)
	test.Error(t, err)
	test.T(t, cfg.Npoints, 3)
	test.Float(t, cfg.Width, 50.0)
	test.Float(t, cfg.Height, 25.0)
	test.T(t, cfg.RectExtent("rect1"), Extent{0.0, 0.0, 10.0, 25.0})

	_, _, rectID := cfg.CurveParams(Curve{Index: 0, ID: "path1"})
	test.String(t, rectID, "rect1")
}

func TestLoadConfigErrors(t *testing.T) {
	var tts = []struct {
		name string
		data string
	}{
		{"missing.yaml", ""},
		{"unknown.yaml", "npoints: 3\ncolour: red\n"},
		{"unknown.toml", "npoints = 3\ncolour = \"red\"\n"},
		{"config.json", `{"npoints": 3}`},
		{"nopoints.yaml", "width: 10\n"},
		{"negative.yaml", "npoints: 3\nwidth: -10\n"},
		{"badrect.yaml", "npoints: 3\nrect_params:\n  box1:\n    width: 10\n"},
		{"badpath.yaml", "npoints: 3\npath_params:\n  curve1:\n    height: 10\n"},
		{"badindex.yaml", "npoints: 3\npath_params:\n  \"-1\":\n    height: 10\n"},
		{"badrectid.yaml", "npoints: 3\npath_params:\n  path1:\n    rect_id: box1\n"},
		{"zeroheight.yaml", "npoints: 3\npath_params:\n  path1:\n    height: 0\n"},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), tt.name)
			if tt.data != "" {
				filename = writeFile(t, tt.name, tt.data)
			}
			_, err := LoadConfig(filename)
			test.That(t, err != nil, "expected error")
			if tt.name != "missing.yaml" {
				test.That(t, errors.Is(err, ErrConfiguration), err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	var tts = []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(cfg *Config) {}, true},
		{"zero npoints", func(cfg *Config) { cfg.Npoints = 0 }, false},
		{"negative workers", func(cfg *Config) { cfg.Workers = -1 }, false},
		{"zero width", func(cfg *Config) { cfg.Width = 0.0 }, false},
		{"infinite height", func(cfg *Config) { cfg.Height = math.Inf(1) }, false},
		{"nan x", func(cfg *Config) { cfg.X = math.NaN() }, false},
		{"negative y", func(cfg *Config) { cfg.Y = -10.0 }, true},
		{"rect params", func(cfg *Config) {
			cfg.RectParams = map[string]RectParams{"RECT7": {Width: Float(5.0), X: Float(-1.0)}}
		}, true},
		{"rect params width", func(cfg *Config) {
			cfg.RectParams = map[string]RectParams{"rect7": {Width: Float(-5.0)}}
		}, false},
		{"path params", func(cfg *Config) {
			cfg.PathParams = map[string]PathParams{"3": {Height: Float(1.0)}, "path_x": {RectID: "rect2"}}
		}, true},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(5)
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok {
				test.Error(t, err)
			} else {
				test.That(t, errors.Is(err, ErrConfiguration), err)
			}
		})
	}
}

func TestCurveParamsPrecedence(t *testing.T) {
	cfg := testConfig(5)
	cfg.PathParams = map[string]PathParams{
		"1":     {Height: Float(10.0), RectID: "rect_index"},
		"path1": {Height: Float(20.0), RectID: "rect_id"},
	}

	_, height, rectID := cfg.CurveParams(Curve{Index: 1, ID: "path1"})
	test.Float(t, height, 10.0)
	test.String(t, rectID, "rect_index")

	_, height, rectID = cfg.CurveParams(Curve{Index: 0, ID: "path1"})
	test.Float(t, height, 20.0)
	test.String(t, rectID, "rect_id")

	_, height, rectID = cfg.CurveParams(Curve{Index: 2, ID: "path2"})
	test.Float(t, height, 50.0)
	test.String(t, rectID, "")
}
