package datasheet

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestLine(t *testing.T) {
	l := Line{Point{0.0, 0.0}, Point{3.0, 4.0}}
	test.T(t, l.Start(), Point{0.0, 0.0})
	test.T(t, l.End(), Point{3.0, 4.0})
	test.Float(t, l.Length(), 5.0)
	test.T(t, l.Pos(0.5), Point{1.5, 2.0})
}

func TestBezierPos(t *testing.T) {
	q := QuadBezier{Point{0.0, 0.0}, Point{50.0, 100.0}, Point{100.0, 0.0}}
	test.T(t, q.Pos(0.0), q.P0)
	test.T(t, q.Pos(1.0), q.P2)
	test.T(t, q.Pos(0.5), Point{50.0, 50.0})

	c := CubicBezier{Point{0.0, 0.0}, Point{0.0, 100.0}, Point{100.0, 100.0}, Point{100.0, 0.0}}
	test.T(t, c.Pos(0.0), c.P0)
	test.T(t, c.Pos(1.0), c.P3)
	test.T(t, c.Pos(0.5), Point{50.0, 75.0})
}

func TestArcPos(t *testing.T) {
	var tts = []struct {
		sweep bool
		mid   Point
	}{
		{true, Point{10.0, -10.0}},
		{false, Point{10.0, 10.0}},
	}
	for _, tt := range tts {
		arc := NewArc(Point{0.0, 0.0}, 10.0, 10.0, 0.0, false, tt.sweep, Point{20.0, 0.0})
		test.T(t, arc.Pos(0.0), Point{0.0, 0.0})
		test.T(t, arc.Pos(1.0), Point{20.0, 0.0})
		test.That(t, arc.Pos(0.5).Equals(tt.mid), arc.Pos(0.5), "!=", tt.mid)
		test.That(t, math.Abs(arc.Length()-10.0*math.Pi) < 1e-6, arc.Length())
	}
}

func TestArcDegenerate(t *testing.T) {
	test.T(t, NewArc(Point{0.0, 0.0}, 0.0, 10.0, 0.0, false, false, Point{20.0, 0.0}), Segment(Line{Point{0.0, 0.0}, Point{20.0, 0.0}}))

	// radii too small are scaled up to span the end points
	arc := NewArc(Point{0.0, 0.0}, 1.0, 1.0, 0.0, false, true, Point{20.0, 0.0})
	test.That(t, math.Abs(arc.Length()-10.0*math.Pi) < 1e-6, arc.Length())
}

// for quadratic Bézier use https://www.wolframalpha.com/input/?i=length+of+the+curve+%7Bx%3D2*(1-t)*t*50.00+%2B+t%5E2*100.00,+y%3D2*(1-t)*t*66.67+%2B+t%5E2*0.00%7D+from+0+to+1
// for ellipse use https://www.wolframalpha.com/input/?i=length+of+the+curve+%7Bx%3D10.00*cos(t),+y%3D20.0*sin(t)%7D+from+0+to+pi
func TestSegmentLength(t *testing.T) {
	var tts = []struct {
		orig   string
		length float64
	}{
		{"M10 0z", 0.0},
		{"M0 0L30 40", 50.0},
		{"Q50 66.67 100 0", 124.533},
		{"Q100 0 100 0", 100.0000},
		{"C0 66.67 100 66.67 100 0", 158.5864},
		{"C0 0 100 66.67 100 0", 125.746},
		{"C0 0 100 0 100 0", 100.0000},
		{"C100 66.67 0 66.67 100 0", 143.9746},
		{"A10 20 0 0 0 20 0", 48.4422},
		{"A10 20 0 0 1 20 0", 48.4422},
		{"A10 20 0 1 0 20 0", 48.4422},
		{"A10 20 0 1 1 20 0", 48.4422},
		{"A10 20 30 0 0 20 0", 31.4622},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			length := MustParseSVGPath(tt.orig).Length()
			if tt.length == 0.0 {
				test.Float(t, length, 0.0)
			} else if math.Abs(tt.length-length)/length > 0.01 {
				test.Fail(t, length, "!=", tt.length, "±1%")
			}
		})
	}
}
