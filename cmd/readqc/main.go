package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/readqc/readqc/qc"
	"github.com/readqc/readqc/report"
)

var (
	fastqPath   string
	bamPath     string
	outputPath  string
	kindName    string
	logLength   bool
	noLogLength bool
	downsample  int
	seed        int64
	indexPath   string
	statsPath   string
)

func init() {
	flag.StringVar(&fastqPath, "fastq", "", "Fastq file to plot. This can be gzipped.")
	flag.StringVar(&fastqPath, "f", "", "Shorthand for -fastq.")
	flag.StringVar(&bamPath, "bam", "", "SAM/BAM file to produce a read percent identity histogram from.")
	flag.StringVar(&bamPath, "b", "", "Shorthand for -bam.")
	flag.StringVar(&outputPath, "output", "", "Path to save the report PDF as. If empty or a directory, the name of the fastq (or bam) file is used with a .pdf extension.")
	flag.StringVar(&outputPath, "o", "", "Shorthand for -output.")
	flag.StringVar(&kindName, "kind", "scatter", "Representation for the length vs quality plot: 'kde', 'scatter' or 'hex'.")
	flag.StringVar(&kindName, "k", "scatter", "Shorthand for -kind.")
	flag.BoolVar(&logLength, "log_length", true, "Plot read length with a log10 transformation on the length vs quality plot.")
	flag.BoolVar(&noLogLength, "no_log_length", false, "Disable the log10 length transformation.")
	flag.IntVar(&downsample, "downsample", qc.DefaultOpts.Downsample, "Downsample reads and alignments to this many records before plotting; 0 disables.")
	flag.IntVar(&downsample, "d", qc.DefaultOpts.Downsample, "Shorthand for -downsample.")
	flag.Int64Var(&seed, "seed", qc.DefaultOpts.Seed, "Seed for the downsampler's random source.")
	flag.StringVar(&indexPath, "index", "", "Input BAM index path. Defaults to bampath + .bai")
	flag.StringVar(&statsPath, "stats", "", "Optional path to write a per-read stats TSV to.")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Quality control plots for long read sequencing data.\n\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if fastqPath == "" && bamPath == "" {
		flag.Usage()
		log.Fatal("at least one of -fastq or -bam must be given")
	}
	kind, err := report.ParseKind(kindName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	cfg := config{
		fastqPath:  fastqPath,
		bamPath:    bamPath,
		outputPath: outputPath,
		statsPath:  statsPath,
		kind:       kind,
		logLength:  logLength && !noLogLength,
		opts: qc.Opts{
			Downsample:   downsample,
			Seed:         seed,
			BamIndexPath: indexPath,
		},
	}
	ctx := vcontext.Background()
	if err := run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}
}
