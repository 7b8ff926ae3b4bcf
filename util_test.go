package datasheet

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3.0, 4.0}
	test.Float(t, p.Length(), 5.0)
	test.T(t, p.Add(Point{1.0, 1.0}), Point{4.0, 5.0})
	test.T(t, p.Sub(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.T(t, p.Mul(2.0), Point{6.0, 8.0})
	test.T(t, p.Interpolate(Point{5.0, 8.0}, 0.5), Point{4.0, 6.0})
	test.That(t, p.Equals(Point{3.0 + 1e-12, 4.0}))
	test.That(t, !p.Equals(Point{3.1, 4.0}))
	test.String(t, p.String(), "[3; 4]")
}

func TestGaussLegendre(t *testing.T) {
	// the integral of ln(x) over [0,1] is -1, the singularity limits the accuracy of a single interval
	test.FloatDiff(t, gaussLegendre5(math.Log, 0.0, 1.0), -0.979001, 1e-6)
	test.FloatDiff(t, gaussLegendre7(math.Log, 0.0, 1.0), -0.988739, 1e-6)

	square := func(x float64) float64 { return x * x }
	test.FloatDiff(t, integrate(gaussLegendre5, square, 0.0, 3.0, 4), 9.0, 1e-6)
	test.FloatDiff(t, integrate(gaussLegendre7, math.Sin, 0.0, math.Pi, 8), 2.0, 1e-6)
}
