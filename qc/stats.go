package qc

import (
	"context"
	"sort"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// Median returns the median of vals, averaging the two middle values
// for even-sized inputs. vals may be unsorted and is not modified.
func Median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// WriteStats dumps one TSV row per read: length, GC fraction and mean
// Phred quality.
func WriteStats(ctx context.Context, path string, reads []Read) (err error) {
	dst, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, dst, &err)
	w := tsv.NewWriter(dst.Writer(ctx))
	w.WriteString("#LENGTH\tGC\tMEAN_QUAL")
	if err = w.EndLine(); err != nil {
		return err
	}
	for _, r := range reads {
		w.WriteInt64(int64(r.Length))
		w.WriteString(strconv.FormatFloat(r.GCFraction, 'g', 6, 64))
		w.WriteString(strconv.FormatFloat(r.MeanQuality, 'g', 6, 64))
		if err = w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}
