// Package chart renders simple line and scatter plots to PNG files.
package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/dperussina/code-library/pkg/errors"
)

// Series is one named line or point set on a plot.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Options controls plot labels and output size.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height are in inches; zero means 8x6
	Width  float64
	Height float64
	Grid   bool
}

func (o *Options) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 8
	}
	if h <= 0 {
		h = 6
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

func newPlot(opts *Options) *plot.Plot {
	if opts == nil {
		opts = &Options{}
	}
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	if opts.Grid {
		p.Add(plotter.NewGrid())
	}
	return p
}

func seriesPoints(s Series) (plotter.XYs, error) {
	if len(s.X) != len(s.Y) {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"series %q has %d x values but %d y values", s.Name, len(s.X), len(s.Y))
	}
	if len(s.X) == 0 {
		return nil, errors.Newf(errors.ErrorTypeValidation, "series %q is empty", s.Name)
	}
	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return pts, nil
}

// Line renders the given series as lines and writes the plot to path.
// The output format follows the file extension (.png, .svg, .pdf).
func Line(path string, opts *Options, series ...Series) error {
	if len(series) == 0 {
		return errors.New(errors.ErrorTypeValidation, "no series given")
	}

	p := newPlot(opts)
	for i, s := range series {
		pts, err := seriesPoints(s)
		if err != nil {
			return err
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrapf(err, errors.ErrorTypeInternal, "failed to build line for %q", s.Name)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}

	return save(p, path, opts)
}

// Scatter renders the given series as point clouds and writes the plot
// to path.
func Scatter(path string, opts *Options, series ...Series) error {
	if len(series) == 0 {
		return errors.New(errors.ErrorTypeValidation, "no series given")
	}

	p := newPlot(opts)
	for i, s := range series {
		pts, err := seriesPoints(s)
		if err != nil {
			return err
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrapf(err, errors.ErrorTypeInternal, "failed to build scatter for %q", s.Name)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		p.Add(scatter)
		if s.Name != "" {
			p.Legend.Add(s.Name, scatter)
		}
	}

	return save(p, path, opts)
}

// Histogram renders a value distribution with the given bin count and
// writes the plot to path.
func Histogram(path string, opts *Options, values []float64, bins int) error {
	if len(values) == 0 {
		return errors.New(errors.ErrorTypeValidation, "no values given")
	}
	if bins <= 0 {
		bins = 16
	}

	p := newPlot(opts)
	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to build histogram")
	}
	p.Add(hist)

	return save(p, path, opts)
}

func save(p *plot.Plot, path string, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	w, h := opts.size()
	if err := p.Save(w, h, path); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to save plot to %s", path)
	}
	return nil
}
