package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const histogramBins = 100

var (
	histColor  = color.NRGBA{R: 31, G: 119, B: 180, A: 128}
	curveColor = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
)

// GC plots the distribution of per-read GC fraction as a histogram
// with a density curve overlaid.
func GC(gc []float64) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = "GC content of each read"
	p.X.Label.Text = "GC content"
	p.Y.Label.Text = "Proportion of reads"
	if err := addDistribution(p, gc); err != nil {
		return nil, err
	}
	p.X.Min, p.X.Max = 0, 1
	return p, nil
}

// addDistribution adds a normalized histogram plus a Gaussian density
// curve for vals to p.
func addDistribution(p *plot.Plot, vals []float64) error {
	if lo, hi := minMax(vals); lo < hi {
		h, err := plotter.NewHist(plotter.Values(vals), histogramBins)
		if err != nil {
			return err
		}
		h.Normalize(1)
		h.FillColor = histColor
		h.LineStyle.Width = 0
		p.Add(h)
	}

	xs, ys := kde1d(vals, 200)
	curve := make(plotter.XYs, len(xs))
	for i := range xs {
		curve[i].X, curve[i].Y = xs[i], ys[i]
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = curveColor
	p.Add(line)
	return nil
}
