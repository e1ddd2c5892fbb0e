package main

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/log"
	"gonum.org/v1/plot"

	"github.com/readqc/readqc/qc"
	"github.com/readqc/readqc/report"
)

type config struct {
	fastqPath  string
	bamPath    string
	outputPath string
	statsPath  string
	kind       report.Kind
	logLength  bool
	opts       qc.Opts
}

func run(ctx context.Context, cfg config) error {
	plots, err := buildPlots(ctx, cfg)
	if err != nil {
		return err
	}
	out, err := resolveOutputPath(cfg.outputPath, cfg.fastqPath, cfg.bamPath)
	if err != nil {
		return err
	}
	return report.WritePDF(ctx, plots, out)
}

// buildPlots runs the load, downsample and derive stages and renders
// the report's plots in their fixed order. The percent identity panel
// is appended only when a BAM/SAM input is given.
func buildPlots(ctx context.Context, cfg config) ([]*plot.Plot, error) {
	var plots []*plot.Plot
	if cfg.fastqPath != "" {
		data, err := qc.CollectFastq(ctx, cfg.fastqPath, cfg.opts)
		if err != nil {
			return nil, err
		}
		if cfg.statsPath != "" {
			if err := qc.WriteStats(ctx, cfg.statsPath, data.Reads); err != nil {
				return nil, err
			}
			log.Printf("wrote per-read stats to %s", cfg.statsPath)
		}
		gcPlot, err := report.GC(data.GC())
		if err != nil {
			return nil, err
		}
		lqPlot, err := report.LengthVsQuality(data.Lengths(), data.MeanQualities(), cfg.kind, cfg.logLength)
		if err != nil {
			return nil, err
		}
		startPlot, err := report.QualityPerPosition(data.FromStart, false)
		if err != nil {
			return nil, err
		}
		endPlot, err := report.QualityPerPosition(data.FromEnd, true)
		if err != nil {
			return nil, err
		}
		plots = append(plots, gcPlot, lqPlot, startPlot, endPlot)
	}
	if cfg.bamPath != "" {
		pids, err := qc.PercentIdentities(ctx, cfg.bamPath, cfg.opts)
		if err != nil {
			return nil, err
		}
		pids = qc.SampleFloats(pids, cfg.opts.Downsample, rand.New(rand.NewSource(cfg.opts.Seed)))
		idPlot, err := report.PercentIdentity(pids)
		if err != nil {
			return nil, err
		}
		plots = append(plots, idPlot)
	}
	return plots, nil
}

// resolveOutputPath resolves the report path. An empty output, or one
// naming a directory, derives the file name from the fastq (or bam)
// input's basename; otherwise a .pdf extension is appended when
// missing.
func resolveOutputPath(output, fastqPath, bamPath string) (string, error) {
	const ext = ".pdf"
	dir := ""
	switch {
	case output == "":
		dir = "."
	default:
		if fi, err := os.Stat(output); err == nil && fi.IsDir() {
			dir = output
		}
	}
	if dir == "" {
		if strings.EqualFold(filepath.Ext(output), ext) {
			return output, nil
		}
		return output + ext, nil
	}

	input := fastqPath
	if input == "" {
		input = bamPath
	}
	base := filepath.Base(input)
	if strings.EqualFold(filepath.Ext(base), ".gz") {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+ext), nil
}
