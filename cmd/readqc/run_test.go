package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readqc/readqc/qc"
	"github.com/readqc/readqc/report"
)

func writeTestFastq(t *testing.T, path string, lengths ...int) {
	t.Helper()
	var sb strings.Builder
	for i, n := range lengths {
		fmt.Fprintf(&sb, "@r%d\n%s\n+\n%s\n", i,
			strings.Repeat("ACGTG", n/5)[:n], strings.Repeat("I", n))
	}
	require.NoError(t, ioutil.WriteFile(path, []byte(sb.String()), 0600))
}

func writeTestSAM(t *testing.T, path string) {
	t.Helper()
	lines := []string{
		"@HD\tVN:1.6\tSO:coordinate",
		"@SQ\tSN:chr1\tLN:1000",
		"r1\t0\tchr1\t1\t60\t4M\t*\t0\t0\tACGT\tIIII\tNM:i:1",
		"r2\t0\tchr1\t10\t60\t4M\t*\t0\t0\tACGT\tIIII\tNM:i:0",
		"r3\t256\tchr1\t20\t60\t4M\t*\t0\t0\tACGT\tIIII\tNM:i:4",
	}
	require.NoError(t, ioutil.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
}

func TestBuildPlots(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	fastqPath := filepath.Join(tempDir, "reads.fastq")
	writeTestFastq(t, fastqPath, 10, 20, 30)
	samPath := filepath.Join(tempDir, "aln.sam")
	writeTestSAM(t, samPath)

	cfg := config{fastqPath: fastqPath, kind: report.KindScatter, logLength: true, opts: qc.DefaultOpts}
	plots, err := buildPlots(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, len(plots))

	cfg.bamPath = samPath
	plots, err = buildPlots(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, len(plots))
	assert.Contains(t, plots[4].Title.Text, "percent identity")

	cfg.fastqPath = ""
	plots, err = buildPlots(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, len(plots))
}

func TestRunWritesReport(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	fastqPath := filepath.Join(tempDir, "sample.fastq")
	writeTestFastq(t, fastqPath, 10, 20, 30)

	cfg := config{
		fastqPath:  fastqPath,
		outputPath: tempDir,
		statsPath:  filepath.Join(tempDir, "stats.tsv"),
		kind:       report.KindScatter,
		logLength:  true,
		opts:       qc.DefaultOpts,
	}
	require.NoError(t, run(ctx, cfg))

	data, err := ioutil.ReadFile(filepath.Join(tempDir, "sample.pdf"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "not a PDF document")

	stats, err := ioutil.ReadFile(cfg.statsPath)
	require.NoError(t, err)
	assert.Equal(t, 4, len(strings.Split(strings.TrimRight(string(stats), "\n"), "\n")))
}

func TestResolveOutputPath(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	cases := []struct {
		output, fastq, bam, want string
	}{
		{"", "reads.fastq", "", "reads.pdf"},
		{"", "dir/reads.fastq.gz", "", "reads.pdf"},
		{"", "", "aln.bam", "aln.pdf"},
		{"out", "reads.fastq", "", "out.pdf"},
		{"out.pdf", "reads.fastq", "", "out.pdf"},
		{"out.PDF", "reads.fastq", "", "out.PDF"},
		{tempDir, "reads.fastq.gz", "", filepath.Join(tempDir, "reads.pdf")},
	}
	for _, c := range cases {
		got, err := resolveOutputPath(c.output, c.fastq, c.bam)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "output=%q fastq=%q bam=%q", c.output, c.fastq, c.bam)
	}
}
