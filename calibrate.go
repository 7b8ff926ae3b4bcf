package datasheet

import (
	"fmt"
)

// Transform maps SVG coordinates to data coordinates for one calibration rectangle. WBox and HBox are the width
// and height of the rectangle in SVG units, Kx and Ky the scale factors, and XOrigin and YOrigin the SVG
// coordinates that correspond to the data-space start.
type Transform struct {
	ID               string
	Kx, Ky           float64
	XOrigin, YOrigin float64
	WBox, HBox       float64
}

// X maps the horizontal SVG coordinate px to data space.
func (t Transform) X(px float64) float64 {
	return t.Kx * (px - t.XOrigin)
}

// Y maps the vertical SVG coordinate py to data space using the vertical scale ky. SVG's y-axis points down
// while the data's points up.
func (t Transform) Y(py, ky float64) float64 {
	return ky * (t.HBox - py + t.YOrigin)
}

func (t Transform) String() string {
	return fmt.Sprintf("%s: kx=%g ky=%g origin=(%g,%g) box=%gx%g", t.ID, t.Kx, t.Ky, t.XOrigin, t.YOrigin, t.WBox, t.HBox)
}

// Calibration holds the transforms of all calibration rectangles. The first rectangle in document order is
// the default.
type Calibration struct {
	ids        []string
	transforms map[string]Transform
}

// Len returns the number of calibrated rectangles.
func (c *Calibration) Len() int {
	return len(c.ids)
}

// IDs returns the rectangle identifiers in document order.
func (c *Calibration) IDs() []string {
	return append([]string{}, c.ids...)
}

// Transform returns the transform of the rectangle with the given identifier.
func (c *Calibration) Transform(id string) (Transform, bool) {
	t, ok := c.transforms[id]
	return t, ok
}

// Default returns the transform of the first rectangle, or an ErrCalibration if there are no rectangles.
func (c *Calibration) Default() (Transform, error) {
	if len(c.ids) == 0 {
		return Transform{}, fmt.Errorf("%w: no calibration rectangle found", ErrCalibration)
	}
	return c.transforms[c.ids[0]], nil
}

// NewTransform calibrates a single rectangle. The first segment is the horizontal reference edge and the second
// the vertical one, both are assumed to be axis-aligned.
func NewTransform(rect CalibrationRect, extent Extent) (Transform, error) {
	if rect.Path == nil || rect.Path.Len() < 2 {
		return Transform{}, fmt.Errorf("%w: %s: rectangle needs at least two segments", ErrCalibration, rect.ID)
	}
	seg0, seg1 := rect.Path.Segment(0), rect.Path.Segment(1)

	wBox := seg0.Pos(1.0).X - seg0.Pos(0.0).X
	hBox := seg1.Pos(1.0).Y - seg1.Pos(0.0).Y
	if wBox == 0.0 {
		return Transform{}, fmt.Errorf("%w: %s: rectangle has zero width", ErrCalibration, rect.ID)
	} else if hBox == 0.0 {
		return Transform{}, fmt.Errorf("%w: %s: rectangle has zero height", ErrCalibration, rect.ID)
	}

	kx := extent.Width / wBox
	ky := extent.Height / hBox
	return Transform{
		ID:      rect.ID,
		Kx:      kx,
		Ky:      ky,
		XOrigin: seg0.Pos(0.0).X - extent.X/kx,
		YOrigin: seg1.Pos(0.0).Y + extent.Y/ky,
		WBox:    wBox,
		HBox:    hBox,
	}, nil
}

// Calibrate derives a transform for every calibration rectangle using the extents from cfg. Either all
// rectangles are calibrated or an error is returned.
func Calibrate(rects []CalibrationRect, cfg *Config) (*Calibration, error) {
	log := cfg.logger()
	c := &Calibration{
		transforms: make(map[string]Transform, len(rects)),
	}
	for _, rect := range rects {
		if _, ok := c.transforms[rect.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate rectangle identifier %s", ErrCalibration, rect.ID)
		}

		t, err := NewTransform(rect, cfg.RectExtent(rect.ID))
		if err != nil {
			return nil, err
		}
		c.ids = append(c.ids, rect.ID)
		c.transforms[rect.ID] = t
		log.Debug("calibrated rectangle", "id", t.ID, "kx", t.Kx, "ky", t.Ky, "x_origin", t.XOrigin, "y_origin", t.YOrigin, "w_box", t.WBox, "h_box", t.HBox)
	}
	if len(c.ids) == 0 {
		log.Warn("no calibration rectangle found")
	}
	return c, nil
}
