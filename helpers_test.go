package datasheet

import (
	"io"
	"log/slog"

	"seehuhn.de/go/geom/matrix"
)

func testConfig(npoints int) *Config {
	cfg := DefaultConfig()
	cfg.Npoints = npoints
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

func testElement(id, d string) Element {
	return Element{
		ID:   id,
		Tag:  "path",
		Path: MustParseSVGPath(d),
	}
}

func matrixTranslateScale(tx, ty, sx, sy float64) matrix.Matrix {
	return matrix.Matrix{sx, 0.0, 0.0, sy, tx, ty}
}

func matrixSkew(k float64) matrix.Matrix {
	return matrix.Matrix{1.0, 0.0, k, 1.0, 0.0, 0.0}
}
