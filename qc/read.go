package qc

import (
	"github.com/pkg/errors"
)

// phredOffset is the Sanger/Illumina 1.8+ quality encoding offset used
// by all modern long-read FASTQ files.
const phredOffset = 33

// Read summarizes a single sequencing read. Records are immutable once
// derived from the raw sequence and quality strings.
type Read struct {
	// Length is the number of bases in the read.
	Length int
	// GCFraction is the fraction of GC bases, in [0, 1].
	GCFraction float64
	// MeanQuality is the arithmetic mean of the read's Phred scores.
	MeanQuality float64
}

// NewRead derives a Read record from a sequence string and decoded
// Phred scores.
func NewRead(seq string, quals []uint8) Read {
	var sum int
	for _, q := range quals {
		sum += int(q)
	}
	mean := 0.0
	if len(quals) > 0 {
		mean = float64(sum) / float64(len(quals))
	}
	return Read{
		Length:      len(seq),
		GCFraction:  gcFraction(seq),
		MeanQuality: mean,
	}
}

// gcFraction returns the GC fraction of seq in [0, 1]. G, C and S
// (strong) count as GC; N bases are excluded from the denominator.
// Case insensitive.
func gcFraction(seq string) float64 {
	var gc, n int
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'S', 'g', 'c', 's':
			gc++
		case 'N', 'n':
			n++
		}
	}
	denom := len(seq) - n
	if denom == 0 {
		return 0
	}
	return float64(gc) / float64(denom)
}

// decodeQuals decodes a FASTQ quality string into Phred scores.
func decodeQuals(qual string) ([]uint8, error) {
	quals := make([]uint8, len(qual))
	for i := 0; i < len(qual); i++ {
		if qual[i] < phredOffset {
			return nil, errors.Errorf("invalid quality character %q at offset %d", qual[i], i)
		}
		quals[i] = qual[i] - phredOffset
	}
	return quals, nil
}
