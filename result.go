package datasheet

import "fmt"

// Values are the data-space coordinates of one curve.
type Values struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Result holds the calibration and the sampled curves of one run. It is not modified after creation.
type Result struct {
	Calibration *Calibration
	curves      []SampleSet
}

// NewResult returns a result for the given sample sets, in curve order.
func NewResult(cal *Calibration, sets []SampleSet) *Result {
	return &Result{
		Calibration: cal,
		curves:      sets,
	}
}

// Len returns the number of curves.
func (r *Result) Len() int {
	return len(r.curves)
}

func (s SampleSet) clone() SampleSet {
	s.T = append([]float64{}, s.T...)
	s.X = append([]float64{}, s.X...)
	s.Y = append([]float64{}, s.Y...)
	return s
}

// Curve returns a copy of the sample set of the i-th curve.
func (r *Result) Curve(i int) (SampleSet, error) {
	if i < 0 || len(r.curves) <= i {
		return SampleSet{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndex, i, len(r.curves))
	}
	return r.curves[i].clone(), nil
}

// CurveByID returns the sample set of the curve with the given identifier.
func (r *Result) CurveByID(id string) (SampleSet, bool) {
	for _, s := range r.curves {
		if s.ID == id {
			return s.clone(), true
		}
	}
	return SampleSet{}, false
}

// Values returns a copy of the coordinates of the i-th curve.
func (r *Result) Values(i int) (Values, error) {
	s, err := r.Curve(i)
	if err != nil {
		return Values{}, err
	}
	return Values{s.X, s.Y}, nil
}
