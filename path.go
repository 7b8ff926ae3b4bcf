package datasheet

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// ErrUnsupportedTransform is returned when a transformation cannot be expressed on an elliptical arc, such as a skew.
var ErrUnsupportedTransform = errors.New("unsupported transform")

// Path is an ordered sequence of segments. A MoveTo starts a new subpath without adding a segment, so that
// consecutive segments need not be connected.
type Path struct {
	segs  []Segment
	start Point // start of the current subpath
	pos   Point
}

// NewPath returns a path consisting of the given segments.
func NewPath(segs ...Segment) *Path {
	p := &Path{segs: segs}
	if 0 < len(segs) {
		p.start = segs[0].Start()
		p.pos = segs[len(segs)-1].End()
	}
	return p
}

// Empty returns true if the path has no segments.
func (p *Path) Empty() bool {
	return len(p.segs) == 0
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segs)
}

// Segments returns the segments of the path in drawing order.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Segment returns the i-th segment.
func (p *Path) Segment(i int) Segment {
	return p.segs[i]
}

// Pos returns the current position of the pen.
func (p *Path) Pos() Point {
	return p.pos
}

// Length returns the total arc length of all segments.
func (p *Path) Length() float64 {
	length := 0.0
	for _, seg := range p.segs {
		length += seg.Length()
	}
	return length
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.start = Point{x, y}
	p.pos = p.start
}

// LineTo adds a linear segment to (x,y).
func (p *Path) LineTo(x, y float64) {
	end := Point{x, y}
	p.segs = append(p.segs, Line{p.pos, end})
	p.pos = end
}

// QuadTo adds a quadratic Bézier segment with control point (cpx,cpy) to (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	end := Point{x, y}
	p.segs = append(p.segs, QuadBezier{p.pos, Point{cpx, cpy}, end})
	p.pos = end
}

// CubeTo adds a cubic Bézier segment with control points (cpx1,cpy1) and (cpx2,cpy2) to (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	end := Point{x, y}
	p.segs = append(p.segs, CubicBezier{p.pos, Point{cpx1, cpy1}, Point{cpx2, cpy2}, end})
	p.pos = end
}

// ArcTo adds an elliptical arc with radii rx and ry, with rot the rotation of the x-axis in degrees, to (x,y).
// An arc to the current position is omitted.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	end := Point{x, y}
	if p.pos == end {
		return
	}
	p.segs = append(p.segs, NewArc(p.pos, rx, ry, rot, large, sweep, end))
	p.pos = end
}

// Close adds a linear segment back to the start of the current subpath, if not already there.
func (p *Path) Close() {
	if p.pos != p.start {
		p.segs = append(p.segs, Line{p.pos, p.start})
	}
	p.pos = p.start
}

////////////////////////////////////////////////////////////////

func applyMatrix(m matrix.Matrix, p Point) Point {
	return Point{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// Transform returns a copy of the path with the affine transformation m applied. Elliptical arcs only allow
// translation, axis-aligned scaling and reflection, or uniform scaling with rotation.
func (p *Path) Transform(m matrix.Matrix) (*Path, error) {
	if m == matrix.Identity {
		return p, nil
	}

	q := &Path{
		segs:  make([]Segment, 0, len(p.segs)),
		start: applyMatrix(m, p.start),
		pos:   applyMatrix(m, p.pos),
	}
	for _, seg := range p.segs {
		switch s := seg.(type) {
		case Line:
			q.segs = append(q.segs, Line{applyMatrix(m, s.P0), applyMatrix(m, s.P1)})
		case QuadBezier:
			q.segs = append(q.segs, QuadBezier{applyMatrix(m, s.P0), applyMatrix(m, s.P1), applyMatrix(m, s.P2)})
		case CubicBezier:
			q.segs = append(q.segs, CubicBezier{applyMatrix(m, s.P0), applyMatrix(m, s.P1), applyMatrix(m, s.P2), applyMatrix(m, s.P3)})
		case Arc:
			arc, err := transformArc(m, s)
			if err != nil {
				return nil, err
			}
			q.segs = append(q.segs, arc)
		default:
			return nil, fmt.Errorf("%w: segment of type %T", ErrUnsupportedTransform, seg)
		}
	}
	return q, nil
}

func transformArc(m matrix.Matrix, a Arc) (Segment, error) {
	rx, ry, rot, sweep := a.Rx, a.Ry, a.Rot, a.Sweep
	if m[1] == 0.0 && m[2] == 0.0 {
		sx, sy := m[0], m[3]
		if rot != 0.0 && !equal(math.Abs(sx), math.Abs(sy)) {
			return nil, fmt.Errorf("%w: non-uniform scaling of rotated arc", ErrUnsupportedTransform)
		}
		rx *= math.Abs(sx)
		ry *= math.Abs(sy)
		if sx*sy < 0.0 {
			rot = -rot
			sweep = !sweep
		}
	} else if equal(m[0], m[3]) && equal(m[1], -m[2]) {
		scale := math.Hypot(m[0], m[1])
		rx *= scale
		ry *= scale
		rot += math.Atan2(m[1], m[0]) * 180.0 / math.Pi
	} else {
		return nil, fmt.Errorf("%w: skewed or reflected rotation of arc", ErrUnsupportedTransform)
	}
	return NewArc(applyMatrix(m, a.P0), rx, ry, rot, a.Large, sweep, applyMatrix(m, a.P1)), nil
}

func (p *Path) String() string {
	sb := strings.Builder{}
	for i, seg := range p.segs {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, seg)
	}
	return sb.String()
}
