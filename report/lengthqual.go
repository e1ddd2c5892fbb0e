package report

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Tick positions matching the original report's log-length axis.
var logLengthTicks = []float64{500, 1e3, 3e3, 5e3, 1e4, 3e4, 5e4, 1e5, 3e5, 5e5, 1e6}

// LengthVsQuality plots read length against mean Phred quality, one
// point (or density cell) per read. With logLength, lengths are
// log10-transformed and the x axis is labeled with untransformed
// values.
func LengthVsQuality(lengths []int, quals []float64, kind Kind, logLength bool) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = "Read length vs quality"
	p.X.Label.Text = "Read Length (bp)"
	p.Y.Label.Text = "Phred quality score"

	xs := make([]float64, len(lengths))
	for i, l := range lengths {
		xs[i] = float64(l)
		if logLength {
			xs[i] = math.Log10(math.Max(1, xs[i]))
		}
	}

	switch kind {
	case KindScatter:
		pts := make(plotter.XYs, len(xs))
		for i := range xs {
			pts[i].X, pts[i].Y = xs[i], quals[i]
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(1.5)
		s.GlyphStyle.Color = color.NRGBA{R: 31, G: 119, B: 180, A: 64}
		p.Add(s)
	case KindKDE:
		grid := kdeGrid(xs, quals, 60, 60)
		p.Add(plotter.NewContour(grid, nil, palette.Heat(12, 1)))
	case KindHex:
		grid := countGrid(xs, quals, 50, 50)
		p.Add(plotter.NewHeatMap(grid, palette.Heat(12, 1)))
	}

	// Fixed quality ticks every 5 phred, like the original report.
	var qticks []plot.Tick
	for q := 0; q <= 45; q += 5 {
		qticks = append(qticks, plot.Tick{Value: float64(q), Label: fmt.Sprint(q)})
	}
	p.Y.Tick.Marker = plot.ConstantTicks(qticks)

	if logLength {
		var xticks []plot.Tick
		for _, v := range logLengthTicks {
			xticks = append(xticks, plot.Tick{Value: math.Log10(v), Label: fmt.Sprint(int(v))})
		}
		p.X.Tick.Marker = plot.ConstantTicks(xticks)
	}
	return p, nil
}
