package qc

// A posBin covers the 0-based half-open position range [start, end) of
// a read.
type posBin struct {
	name       string
	start, end int
}

// positionBins is the fixed ordered set of position bins used for the
// per-position quality panels. Single-base bins cover the first ten
// positions; wider bins cover the rest of the region most affected by
// adapter and pore artifacts.
var positionBins = []posBin{
	{"1", 0, 1},
	{"2", 1, 2},
	{"3", 2, 3},
	{"4", 3, 4},
	{"5", 4, 5},
	{"6", 5, 6},
	{"7", 6, 7},
	{"8", 7, 8},
	{"9", 8, 9},
	{"10", 9, 10},
	{"11-20", 10, 20},
	{"21-50", 20, 50},
	{"51-100", 50, 100},
	{"101-200", 100, 200},
	{"201-300", 200, 300},
}

// NumPositionBins is the number of fixed position bins.
var NumPositionBins = len(positionBins)

// QualityBins collects the Phred scores observed at each position bin
// across all reads, for one read orientation. A read contributes to a
// bin only if it is long enough to have a base in the bin's range.
type QualityBins struct {
	values [][]uint8
}

// NewQualityBins returns an empty table with one multiset per fixed
// position bin.
func NewQualityBins() *QualityBins {
	return &QualityBins{values: make([][]uint8, len(positionBins))}
}

// Bin returns the name and collected quality values of the i'th bin.
func (b *QualityBins) Bin(i int) (string, []uint8) {
	return positionBins[i].name, b.values[i]
}

// AddFromStart bins quals by position counted from the first base.
func (b *QualityBins) AddFromStart(quals []uint8) {
	for i, bin := range positionBins {
		if bin.start >= len(quals) {
			break
		}
		end := bin.end
		if end > len(quals) {
			end = len(quals)
		}
		b.values[i] = append(b.values[i], quals[bin.start:end]...)
	}
}

// AddFromEnd bins quals by position counted from the last base
// backward.
func (b *QualityBins) AddFromEnd(quals []uint8) {
	n := len(quals)
	for i, bin := range positionBins {
		if bin.start >= n {
			break
		}
		end := bin.end
		if end > n {
			end = n
		}
		b.values[i] = append(b.values[i], quals[n-end:n-bin.start]...)
	}
}
