package datasheet

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotOptions configures the plot of the digitized curves. Labels are used in curve order and default to
// "Plot <i>". Width and height default to 12 by 9 centimetres.
type PlotOptions struct {
	Title         string
	XLabel        string
	YLabel        string
	Labels        []string
	Width, Height vg.Length
}

func (opts PlotOptions) size() (vg.Length, vg.Length) {
	width, height := opts.Width, opts.Height
	if width == 0.0 {
		width = 12.0 * vg.Centimeter
	}
	if height == 0.0 {
		height = 9.0 * vg.Centimeter
	}
	return width, height
}

// Plot returns a plot with one line with markers per curve.
func Plot(res *Result, opts PlotOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	for i, s := range res.curves {
		xys := make(plotter.XYs, s.Len())
		for j := range xys {
			xys[j].X = s.X[j]
			xys[j].Y = s.Y[j]
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.ID, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)

		label := fmt.Sprintf("Plot %d", s.Index)
		if i < len(opts.Labels) && opts.Labels[i] != "" {
			label = opts.Labels[i]
		}
		p.Legend.Add(label, line, points)
	}
	return p, nil
}

// SavePlot plots the curves to a file, where the format is determined by the extension (eps, jpg, pdf, png, svg
// or tiff).
func SavePlot(res *Result, opts PlotOptions, filename string) error {
	p, err := Plot(res, opts)
	if err != nil {
		return err
	}
	width, height := opts.size()
	return p.Save(width, height, filename)
}

// WritePlot plots the curves to w in the given format, see SavePlot.
func WritePlot(w io.Writer, res *Result, opts PlotOptions, format string) error {
	p, err := Plot(res, opts)
	if err != nil {
		return err
	}
	width, height := opts.size()
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
