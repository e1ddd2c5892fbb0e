package qc

// Opts controls data collection.
type Opts struct {
	// Downsample caps the number of reads (and alignments) used for
	// plotting. 0 means no limit.
	Downsample int
	// Seed seeds the downsampler's random source, for reproducible
	// subsampling.
	Seed int64
	// BamIndexPath is the path of the BAM index file. If "", it
	// defaults to the BAM path + ".bai".
	BamIndexPath string
}

// DefaultOpts is the default option set used by cmd/readqc.
var DefaultOpts = Opts{
	Downsample: 50000,
	Seed:       0,
}
