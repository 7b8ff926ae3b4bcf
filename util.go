package datasheet

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for geometric comparisons.
var Epsilon = 1e-10

// Precision is the number of significant digits used when writing sample values.
var Precision = 8

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

type gaussLegendreFunc func(func(float64) float64, float64, float64) float64

// Gauss-Legendre quadrature integration from a to b with n=5
// see https://pomax.github.io/bezierinfo/legendre-gauss.html for more values
func gaussLegendre5(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	Qd1 := f(-0.906179846*c + d)
	Qd2 := f(-0.538469310*c + d)
	Qd3 := f(d)
	Qd4 := f(0.538469310*c + d)
	Qd5 := f(0.906179846*c + d)
	return c * (0.236926885*(Qd1+Qd5) + 0.478628670*(Qd2+Qd4) + 0.568888889*Qd3)
}

// Gauss-Legendre quadrature integration from a to b with n=7
func gaussLegendre7(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	Qd1 := f(-0.949107912*c + d)
	Qd2 := f(-0.741531186*c + d)
	Qd3 := f(-0.405845151*c + d)
	Qd4 := f(d)
	Qd5 := f(0.405845151*c + d)
	Qd6 := f(0.741531186*c + d)
	Qd7 := f(0.949107912*c + d)
	return c * (0.129484966*(Qd1+Qd7) + 0.279705391*(Qd2+Qd6) + 0.381830051*(Qd3+Qd5) + 0.417959184*Qd4)
}

// integrate sums the quadrature over n equal sub-intervals of [a,b].
func integrate(gaussLegendre gaussLegendreFunc, f func(float64) float64, a, b float64, n int) float64 {
	sum := 0.0
	dx := (b - a) / float64(n)
	for i := 0; i < n; i++ {
		sum += gaussLegendre(f, a+float64(i)*dx, a+float64(i+1)*dx)
	}
	return sum
}
