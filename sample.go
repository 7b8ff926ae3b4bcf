package datasheet

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// SampleSet is a curve sampled at fractions T of its arc length, mapped to data space through the transform
// of rectangle RectID.
type SampleSet struct {
	Index  int
	ID     string
	RectID string
	T      []float64
	X, Y   []float64
}

// Len returns the number of samples.
func (s SampleSet) Len() int {
	return len(s.X)
}

// Points returns n fractions evenly spaced over [0,1], including both ends. A single point is placed at 0.
func Points(n int) []float64 {
	if n <= 0 {
		return []float64{}
	} else if n == 1 {
		return []float64{0.0}
	}
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) / float64(n-1)
	}
	ts[n-1] = 1.0
	return ts
}

// arcLength holds the segment lengths of a path so they are computed once per curve.
type arcLength struct {
	segs    []Segment
	lengths []float64
	total   float64
}

func newArcLength(p *Path) arcLength {
	a := arcLength{
		segs:    p.Segments(),
		lengths: make([]float64, p.Len()),
	}
	for i, seg := range a.segs {
		a.lengths[i] = seg.Length()
		a.total += a.lengths[i]
	}
	return a
}

// Pos returns the point at fraction t of the total arc length. The owning segment is the first whose end lies
// at or beyond the target length, within which the position is interpolated parametrically.
func (a arcLength) Pos(t float64) (Point, error) {
	target := t * a.total
	cumulative := 0.0
	for i, seg := range a.segs {
		length := a.lengths[i]
		if target <= cumulative+length {
			localT := 0.0
			if 0.0 < length {
				localT = (target - cumulative) / length
			}
			localT = math.Max(0.0, math.Min(1.0, localT))
			return seg.Pos(localT), nil
		}
		cumulative += length
	}
	return Point{}, fmt.Errorf("no segment at length %g of %g", target, a.total)
}

// SampleCurve samples a single curve at the given fractions of its arc length and maps the points through
// transform t, using ky as the vertical scale.
func SampleCurve(curve Curve, t Transform, ky float64, points []float64) (SampleSet, error) {
	if curve.Path == nil || curve.Path.Empty() {
		return SampleSet{}, fmt.Errorf("%w: %s: no geometry", ErrSampling, curve.ID)
	}
	a := newArcLength(curve.Path)
	if !(0.0 < a.total) {
		return SampleSet{}, fmt.Errorf("%w: %s: curve has zero length", ErrSampling, curve.ID)
	}

	s := SampleSet{
		Index:  curve.Index,
		ID:     curve.ID,
		RectID: t.ID,
		T:      append([]float64{}, points...),
		X:      make([]float64, len(points)),
		Y:      make([]float64, len(points)),
	}
	for i, frac := range points {
		p, err := a.Pos(frac)
		if err != nil {
			return SampleSet{}, fmt.Errorf("%w: %s: %v", ErrSampling, curve.ID, err)
		}
		s.X[i] = t.X(p.X)
		s.Y[i] = t.Y(p.Y, ky)
	}
	return s, nil
}

// transformFor selects the curve's associated rectangle if it was calibrated, otherwise the default, and
// returns it with the curve's own vertical scale.
func transformFor(curve Curve, cal *Calibration, cfg *Config) (Transform, float64, error) {
	yStart, height, rectID := cfg.CurveParams(curve)

	t, ok := cal.Transform(rectID)
	if !ok {
		if rectID != "" {
			cfg.logger().Warn("unknown rectangle, using default", "curve", curve.ID, "rect_id", rectID)
		}
		var err error
		if t, err = cal.Default(); err != nil {
			return Transform{}, 0.0, fmt.Errorf("%s: %w", curve.ID, err)
		}
	}
	ky := height / t.HBox
	cfg.logger().Debug("sampling curve", "curve", curve.ID, "index", curve.Index, "rect_id", t.ID, "y", yStart, "height", height, "ky", ky)
	return t, ky, nil
}

// Sample samples all curves in order. When a curve fails, the sample sets of the curves before it are returned
// together with the error.
func Sample(curves []Curve, cal *Calibration, cfg *Config, points []float64) ([]SampleSet, error) {
	sets := make([]SampleSet, 0, len(curves))
	for _, curve := range curves {
		t, ky, err := transformFor(curve, cal, cfg)
		if err != nil {
			return sets, err
		}
		s, err := SampleCurve(curve, t, ky, points)
		if err != nil {
			return sets, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

// SampleConcurrent is like Sample but samples up to workers curves at the same time. The sample sets are in
// curve order, and on error none are returned.
func SampleConcurrent(ctx context.Context, curves []Curve, cal *Calibration, cfg *Config, points []float64, workers int) ([]SampleSet, error) {
	sets := make([]SampleSet, len(curves))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, curve := range curves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, ky, err := transformFor(curve, cal, cfg)
			if err != nil {
				return err
			}
			sets[i], err = SampleCurve(curve, t, ky, points)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
