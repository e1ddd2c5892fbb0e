package qc

import (
	"context"
	"math/rand"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"github.com/readqc/readqc/encoding/fastq"
)

// FastqData holds everything derived from one FASTQ file: the per-read
// summary records and the positional quality tables for both read
// orientations.
type FastqData struct {
	Reads []Read
	// FromStart and FromEnd collect quality scores by position bin,
	// anchored at the first and last base respectively.
	FromStart *QualityBins
	FromEnd   *QualityBins
}

// GC returns the GC fraction of every read.
func (d *FastqData) GC() []float64 {
	out := make([]float64, len(d.Reads))
	for i, r := range d.Reads {
		out[i] = r.GCFraction
	}
	return out
}

// Lengths returns the length of every read.
func (d *FastqData) Lengths() []int {
	out := make([]int, len(d.Reads))
	for i, r := range d.Reads {
		out[i] = r.Length
	}
	return out
}

// MeanQualities returns the mean Phred quality of every read.
func (d *FastqData) MeanQualities() []float64 {
	out := make([]float64, len(d.Reads))
	for i, r := range d.Reads {
		out[i] = r.MeanQuality
	}
	return out
}

// CollectFastq parses the (optionally gzipped) FASTQ file at path,
// optionally downsamples it to opts.Downsample reads, and derives the
// per-read records and positional quality tables. An empty or
// malformed file is an error.
func CollectFastq(ctx context.Context, path string, opts Opts) (data *FastqData, err error) {
	in, cleanup, err := fastq.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var (
		raw  []fastq.Read
		rec  fastq.Read
		scan = fastq.NewScanner(in, fastq.Seq|fastq.Qual)
	)
	for scan.Scan(&rec) {
		raw = append(raw, rec)
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Wrapf(err, "parse %v: record %d", path, scan.N()+1)
	}
	if len(raw) == 0 {
		return nil, errors.Errorf("%v: empty FASTQ file", path)
	}
	if opts.Downsample > 0 && len(raw) > opts.Downsample {
		log.Printf("%s: downsampling %d reads to %d", path, len(raw), opts.Downsample)
		raw = SampleReads(raw, opts.Downsample, rand.New(rand.NewSource(opts.Seed)))
	}

	data = &FastqData{
		Reads:     make([]Read, 0, len(raw)),
		FromStart: NewQualityBins(),
		FromEnd:   NewQualityBins(),
	}
	for _, r := range raw {
		quals, err := decodeQuals(r.Qual)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %v", path)
		}
		data.Reads = append(data.Reads, NewRead(r.Seq, quals))
		data.FromStart.AddFromStart(quals)
		data.FromEnd.AddFromEnd(quals)
	}
	log.Printf("%s: collected %d reads", path, len(data.Reads))
	return data, nil
}
