package qc

import (
	"math/rand"

	"github.com/readqc/readqc/encoding/fastq"
)

// SampleReads draws n reads uniformly at random, without replacement,
// from recs. It returns recs unchanged when n is zero or not smaller
// than len(recs). The order of the returned sample is unspecified.
// recs may be permuted in place.
func SampleReads(recs []fastq.Read, n int, rng *rand.Rand) []fastq.Read {
	if n <= 0 || len(recs) <= n {
		return recs
	}
	// Partial Fisher-Yates: after i swaps the first i entries are a
	// uniform sample of the whole slice.
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(recs)-i)
		recs[i], recs[j] = recs[j], recs[i]
	}
	return recs[:n]
}

// SampleFloats draws n values uniformly at random, without
// replacement, from vals. Semantics match SampleReads.
func SampleFloats(vals []float64, n int, rng *rand.Rand) []float64 {
	if n <= 0 || len(vals) <= n {
		return vals
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(vals)-i)
		vals[i], vals[j] = vals[j], vals[i]
	}
	return vals[:n]
}
