package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/readqc/readqc/qc"
)

// PercentIdentity plots the distribution of alignment percent
// identities with a dashed vertical line at the median.
func PercentIdentity(pids []float64) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = "Read alignment percent identity"
	p.X.Label.Text = "Read percent identity"
	p.Y.Label.Text = "Proportion of reads"
	if err := addDistribution(p, pids); err != nil {
		return nil, err
	}

	median := qc.Median(pids)
	marker, err := plotter.NewLine(plotter.XYs{{X: median, Y: 0}, {X: median, Y: 1}})
	if err != nil {
		return nil, err
	}
	marker.LineStyle.Width = vg.Points(2)
	marker.LineStyle.Color = color.NRGBA{R: 214, G: 39, B: 40, A: 192}
	marker.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(marker)
	p.Legend.Add(fmt.Sprintf("median %.2f", median), marker)
	return p, nil
}
