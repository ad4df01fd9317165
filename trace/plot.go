package trace

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot size used by WritePlot.
const (
	PlotWidth  = 10 * vg.Inch
	PlotHeight = 5 * vg.Inch
)

// Plot builds a line chart of every tracked vertex: hours on X, kelvin on Y.
func (r *Recorder) Plot(title string) (*plot.Plot, error) {
	samples := r.Samples()
	if len(samples) == 0 {
		return nil, ErrEmpty
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (h)"
	p.Y.Label.Text = "temperature (K)"
	p.Add(plotter.NewGrid())

	lines := make([]interface{}, 0, 2*len(r.names))
	for col, name := range r.names {
		pts := make(plotter.XYs, len(samples))
		for i, s := range samples {
			pts[i].X = s.Time / 3600
			pts[i].Y = s.Values[col]
		}
		lines = append(lines, name, pts)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, fmt.Errorf("trace: plot lines: %w", err)
	}

	return p, nil
}

// WritePlot renders the chart to path; the extension (.png, .svg, .pdf)
// selects the format.
func (r *Recorder) WritePlot(path, title string) error {
	p, err := r.Plot(title)
	if err != nil {
		return err
	}
	if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
		return fmt.Errorf("trace: save %s: %w", path, err)
	}
	return nil
}
