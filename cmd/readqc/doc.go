package main

/*
readqc sanity-checks long-read sequencing data. Feed it a FASTQ file
and it writes a multi-page PDF report with four plots:

 1. GC content histogram with a distribution curve for the sample.
 2. Read length vs. mean Phred quality score for each read. The
    interior representation of this plot can be altered with -kind.
 3. Box plots of the Phred quality score at positional bins across all
    reads, from the start of reads. Bins cover read positions 1-10
    individually, then 11-20, 21-50, 51-100, 101-200 and 201-300.
 4. Same as 3, but from the end of each read.

If a sorted, indexed BAM (or SAM) file is also provided, a histogram
of alignment percent identity with a marked median is appended.

Sample usage:

	readqc -f reads.fastq.gz -b aln.bam -o report.pdf

At least one of -fastq/-bam is required. Large inputs are downsampled
to -downsample reads (default 50000) before plotting.
*/
