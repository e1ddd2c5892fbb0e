package qc

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
	"v.io/x/lib/vlog"
)

var nmTag = sam.NewTag("NM")

// PercentIdentities reads the sorted, indexed BAM (or SAM) file at
// path and returns the percent identity of every primary alignment.
// Secondary, supplementary and unmapped records never contribute. The
// result is an error if no primary alignment with an NM tag remains.
func PercentIdentities(ctx context.Context, path string, opts Opts) (pids []float64, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)

	var (
		header *sam.Header
		next   func() (*sam.Record, error)
	)
	if strings.HasSuffix(path, ".bam") {
		if err := checkBAMIndex(ctx, path, opts.BamIndexPath); err != nil {
			return nil, err
		}
		r, err := bam.NewReader(in.Reader(ctx), 1)
		if err != nil {
			return nil, errors.Wrapf(err, "open %v", path)
		}
		defer r.Close() // nolint: errcheck
		header = r.Header()
		next = r.Read
	} else {
		r, err := sam.NewReader(in.Reader(ctx))
		if err != nil {
			return nil, errors.Wrapf(err, "open %v", path)
		}
		header = r.Header()
		next = r.Read
	}
	switch header.SortOrder {
	case sam.Coordinate, sam.UnknownOrder:
	default:
		return nil, errors.Errorf("%v: not coordinate sorted (SO:%v)", path, header.SortOrder)
	}

	var nSkipped, nNoTag int
	for {
		rec, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %v", path)
		}
		if rec.Flags&(sam.Secondary|sam.Supplementary|sam.Unmapped) != 0 {
			nSkipped++
			continue
		}
		pid, ok := percentIdentity(rec)
		if !ok {
			nNoTag++
			continue
		}
		pids = append(pids, pid)
	}
	vlog.VI(1).Infof("%v: %d primary alignments, %d skipped, %d without NM tag",
		path, len(pids), nSkipped, nNoTag)
	if len(pids) == 0 {
		return nil, errors.Errorf("%v: no usable primary alignments", path)
	}
	return pids, nil
}

// checkBAMIndex verifies that the BAM index exists and parses.
func checkBAMIndex(ctx context.Context, bamPath, indexPath string) (err error) {
	if indexPath == "" {
		indexPath = bamPath + ".bai"
	}
	in, err := file.Open(ctx, indexPath)
	if err != nil {
		return errors.Wrapf(err, "%v: missing BAM index", bamPath)
	}
	defer file.CloseAndReport(ctx, in, &err)
	if _, err := bam.ReadIndex(in.Reader(ctx)); err != nil {
		return errors.Wrapf(err, "%v: corrupt BAM index", indexPath)
	}
	return nil
}

// percentIdentity computes (aligned length - edit distance) / aligned
// length x 100 for one record, clamped to [0, 100]. The second return
// is false if the record has no NM tag or an empty alignment.
func percentIdentity(rec *sam.Record) (float64, bool) {
	aux := rec.AuxFields.Get(nmTag)
	if aux == nil {
		return 0, false
	}
	nm, ok := auxInt(aux.Value())
	if !ok {
		return 0, false
	}
	aligned := alignedQueryLen(rec.Cigar)
	if aligned == 0 {
		return 0, false
	}
	pid := float64(aligned-nm) / float64(aligned) * 100
	if pid < 0 {
		pid = 0
	} else if pid > 100 {
		pid = 100
	}
	return pid, true
}

// alignedQueryLen is the number of query bases inside the alignment,
// i.e. cigar ops that consume the query, excluding soft clips.
func alignedQueryLen(cigar sam.Cigar) int {
	var n int
	for _, co := range cigar {
		if co.Type() == sam.CigarSoftClipped {
			continue
		}
		if co.Type().Consumes().Query == 1 {
			n += co.Len()
		}
	}
	return n
}

// auxInt widens the integer types the SAM spec allows for NM.
func auxInt(v interface{}) (int, bool) {
	switch x := v.(type) {
	case int8:
		return int(x), true
	case uint8:
		return int(x), true
	case int16:
		return int(x), true
	case uint16:
		return int(x), true
	case int32:
		return int(x), true
	case uint32:
		return int(x), true
	case int:
		return x, true
	default:
		return 0, false
	}
}
