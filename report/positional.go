package report

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/readqc/readqc/qc"
)

// QualityPerPosition draws one box plot per position bin. For the
// end-anchored table the bins are drawn farthest-from-end first, so
// the panel reads toward the final base, mirroring the start panel.
func QualityPerPosition(bins *qc.QualityBins, fromEnd bool) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	if fromEnd {
		p.Title.Text = "Quality score across reads, from the end"
	} else {
		p.Title.Text = "Quality score across reads, from the start"
	}
	p.X.Label.Text = "Read position (bp)"
	p.Y.Label.Text = "Phred Quality Score"

	w := vg.Points(20)
	var (
		loc   float64
		names []string
	)
	for i := 0; i < qc.NumPositionBins; i++ {
		idx := i
		if fromEnd {
			idx = qc.NumPositionBins - 1 - i
		}
		name, quals := bins.Bin(idx)
		if len(quals) == 0 {
			continue
		}
		vals := make(plotter.Values, len(quals))
		for j, q := range quals {
			vals[j] = float64(q)
		}
		b, err := plotter.NewBoxPlot(w, loc, vals)
		if err != nil {
			return nil, err
		}
		p.Add(b)
		names = append(names, name)
		loc++
	}
	p.NominalX(names...)
	return p, nil
}
