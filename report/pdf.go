package report

import (
	"context"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Report pages match the original matplotlib figure size (11.7x10in).
const (
	pageWidth  = 11.7 * vg.Inch
	pageHeight = 10 * vg.Inch
)

// WritePDF renders the given plots, one per page and in order, into a
// single PDF document at path.
func WritePDF(ctx context.Context, plots []*plot.Plot, path string) (err error) {
	c := vgpdf.New(pageWidth, pageHeight)
	for i, p := range plots {
		if i > 0 {
			c.NextPage()
		}
		p.Draw(draw.New(c))
	}
	dst, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, dst, &err)
	if _, err := c.WriteTo(dst.Writer(ctx)); err != nil {
		return err
	}
	log.Printf("wrote %d-page report to %s", len(plots), path)
	return nil
}
