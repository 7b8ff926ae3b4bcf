package datasheet

import (
	"fmt"
	"math"
)

// Segment is one drawable piece of a path. Pos evaluates the segment at the parametric position t in [0,1],
// so that Pos(0) is Start and Pos(1) is End.
type Segment interface {
	Start() Point
	End() Point
	Length() float64
	Pos(t float64) Point
}

// number of quadrature intervals used for the length of curved segments
const lengthIntervals = 8

////////////////////////////////////////////////////////////////

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Length()
}

func (l Line) Pos(t float64) Point {
	return l.P0.Interpolate(l.P1, t)
}

func (l Line) String() string {
	return fmt.Sprintf("L%v-%v", l.P0, l.P1)
}

////////////////////////////////////////////////////////////////

// QuadBezier is a quadratic Bézier from P0 to P2 with control point P1.
type QuadBezier struct {
	P0, P1, P2 Point
}

func (q QuadBezier) Start() Point { return q.P0 }
func (q QuadBezier) End() Point   { return q.P2 }

func (q QuadBezier) Pos(t float64) Point {
	p0 := q.P0.Mul(1.0 - 2.0*t + t*t)
	p1 := q.P1.Mul(2.0*t - 2.0*t*t)
	p2 := q.P2.Mul(t * t)
	return p0.Add(p1).Add(p2)
}

func (q QuadBezier) deriv(t float64) Point {
	p0 := q.P0.Mul(-2.0 + 2.0*t)
	p1 := q.P1.Mul(2.0 - 4.0*t)
	p2 := q.P2.Mul(2.0 * t)
	return p0.Add(p1).Add(p2)
}

func (q QuadBezier) Length() float64 {
	speed := func(t float64) float64 {
		return q.deriv(t).Length()
	}
	return integrate(gaussLegendre5, speed, 0.0, 1.0, lengthIntervals)
}

func (q QuadBezier) String() string {
	return fmt.Sprintf("Q%v-%v-%v", q.P0, q.P1, q.P2)
}

////////////////////////////////////////////////////////////////

// CubicBezier is a cubic Bézier from P0 to P3 with control points P1 and P2.
type CubicBezier struct {
	P0, P1, P2, P3 Point
}

func (c CubicBezier) Start() Point { return c.P0 }
func (c CubicBezier) End() Point   { return c.P3 }

func (c CubicBezier) Pos(t float64) Point {
	p0 := c.P0.Mul(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 := c.P1.Mul(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 := c.P2.Mul(3.0*t*t - 3.0*t*t*t)
	p3 := c.P3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func (c CubicBezier) deriv(t float64) Point {
	p0 := c.P0.Mul(-3.0 + 6.0*t - 3.0*t*t)
	p1 := c.P1.Mul(3.0 - 12.0*t + 9.0*t*t)
	p2 := c.P2.Mul(6.0*t - 9.0*t*t)
	p3 := c.P3.Mul(3.0 * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func (c CubicBezier) Length() float64 {
	speed := func(t float64) float64 {
		return c.deriv(t).Length()
	}
	return integrate(gaussLegendre7, speed, 0.0, 1.0, lengthIntervals)
}

func (c CubicBezier) String() string {
	return fmt.Sprintf("C%v-%v-%v-%v", c.P0, c.P1, c.P2, c.P3)
}

////////////////////////////////////////////////////////////////

// Arc is an elliptical arc from P0 to P1 in SVG endpoint parametrization. Rot is the rotation of the ellipse's
// x-axis in degrees. Use NewArc to fill in the center parametrization.
type Arc struct {
	P0, P1       Point
	Rx, Ry, Rot  float64
	Large, Sweep bool

	center         Point
	rx, ry         float64 // radii after scaling up too small radii
	theta0, theta1 float64 // in radians
}

// NewArc returns an elliptical arc. Zero radii degenerate the arc into a straight line, as in SVG.
func NewArc(p0 Point, rx, ry, rot float64, large, sweep bool, p1 Point) Segment {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0.0 || ry == 0.0 {
		return Line{p0, p1}
	}

	a := Arc{
		P0:    p0,
		P1:    p1,
		Rx:    rx,
		Ry:    ry,
		Rot:   rot,
		Large: large,
		Sweep: sweep,
	}
	a.center, a.rx, a.ry, a.theta0, a.theta1 = arcToCenter(p0.X, p0.Y, rx, ry, rot, large, sweep, p1.X, p1.Y)
	return a
}

func (a Arc) Start() Point { return a.P0 }
func (a Arc) End() Point   { return a.P1 }

func (a Arc) Pos(t float64) Point {
	if t == 0.0 {
		return a.P0
	} else if t == 1.0 {
		return a.P1
	}
	theta := a.theta0 + t*(a.theta1-a.theta0)
	sinphi, cosphi := math.Sincos(a.Rot * math.Pi / 180.0)
	sintheta, costheta := math.Sincos(theta)
	return Point{
		a.center.X + cosphi*a.rx*costheta - sinphi*a.ry*sintheta,
		a.center.Y + sinphi*a.rx*costheta + cosphi*a.ry*sintheta,
	}
}

func (a Arc) deriv(t float64) Point {
	dtheta := a.theta1 - a.theta0
	theta := a.theta0 + t*dtheta
	sinphi, cosphi := math.Sincos(a.Rot * math.Pi / 180.0)
	sintheta, costheta := math.Sincos(theta)
	return Point{
		dtheta * (-cosphi*a.rx*sintheta - sinphi*a.ry*costheta),
		dtheta * (-sinphi*a.rx*sintheta + cosphi*a.ry*costheta),
	}
}

func (a Arc) Length() float64 {
	if a.theta0 == a.theta1 {
		return 0.0
	}
	speed := func(t float64) float64 {
		return a.deriv(t).Length()
	}
	return integrate(gaussLegendre7, speed, 0.0, 1.0, lengthIntervals)
}

func (a Arc) String() string {
	return fmt.Sprintf("A%v-%g-%g-%g-%v-%v-%v", a.P0, a.Rx, a.Ry, a.Rot, a.Large, a.Sweep, a.P1)
}

// arcToCenter changes between the SVG arc format to the center and angles format. It returns the center, the
// radii (scaled up if they cannot span both end points) and the start and end angles in radians.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (Point, float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return Point{x1, y1}, rx, ry, 0.0, 0.0
	}

	rot *= math.Pi / 180.0
	sinrot, cosrot := math.Sincos(rot)
	x1p := cosrot*(x1-x2)/2.0 + sinrot*(y1-y2)/2.0
	y1p := -sinrot*(x1-x2)/2.0 + cosrot*(y1-y2)/2.0

	// reduce rouding errors
	raddiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if raddiCheck > 1.0 {
		rx *= math.Sqrt(raddiCheck)
		ry *= math.Sqrt(raddiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosrot*cxp - sinrot*cyp + (x1+x2)/2.0
	cy := sinrot*cxp + cosrot*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(math.Max(-1.0, math.Min(1.0, ux/math.Sqrt(ux*ux+uy*uy))))
	if uy < 0.0 {
		theta = -theta
	}

	delta := math.Acos(math.Max(-1.0, math.Min(1.0, (ux*vx+uy*vy)/math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return Point{cx, cy}, rx, ry, theta, theta + delta
}
