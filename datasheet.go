// Package datasheet digitizes curves drawn in SVG images of datasheet plots. Rectangles whose identifier starts
// with "rect" calibrate the mapping from SVG to data coordinates, and elements whose identifier starts with
// "path" are the curves, which are sampled at evenly spaced fractions of their arc length.
package datasheet

import (
	"context"
	"io"
	"os"
)

// Digitize parses an SVG document, calibrates its rectangles and samples its curves. When sampling fails
// sequentially, the returned result holds the curves sampled before the failure.
func Digitize(r io.Reader, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	elems, err := ParseSVG(r)
	if err != nil {
		return nil, err
	}
	return DigitizeElements(elems, cfg)
}

// DigitizeFile opens and digitizes an SVG file, see Digitize.
func DigitizeFile(filename string, cfg *Config) (*Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Digitize(f, cfg)
}

// DigitizeElements calibrates and samples already parsed elements.
func DigitizeElements(elems []Element, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc := Classify(elems)
	cfg.logger().Info("classified elements", "rects", len(doc.Rects), "curves", len(doc.Curves))

	cal, err := Calibrate(doc.Rects, cfg)
	if err != nil {
		return nil, err
	}

	points := Points(cfg.Npoints)
	var sets []SampleSet
	if 1 < cfg.Workers {
		sets, err = SampleConcurrent(context.Background(), doc.Curves, cal, cfg, points, cfg.Workers)
	} else {
		sets, err = Sample(doc.Curves, cal, cfg, points)
	}
	return NewResult(cal, sets), err
}
