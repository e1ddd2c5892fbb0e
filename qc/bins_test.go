package qc

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func binByName(t *testing.T, b *QualityBins, name string) []uint8 {
	t.Helper()
	for i := 0; i < NumPositionBins; i++ {
		n, vals := b.Bin(i)
		if n == name {
			return vals
		}
	}
	t.Fatalf("no bin named %q", name)
	return nil
}

func TestShortReadTouchesOnlyItsPositions(t *testing.T) {
	quals := []uint8{1, 2, 3, 4, 5}
	start := NewQualityBins()
	start.AddFromStart(quals)
	end := NewQualityBins()
	end.AddFromEnd(quals)

	for i := 0; i < NumPositionBins; i++ {
		name, vals := start.Bin(i)
		if i < 5 {
			expect.EQ(t, vals, []uint8{quals[i]}, "start bin %s", name)
		} else if len(vals) != 0 {
			t.Errorf("start bin %s should be empty, got %v", name, vals)
		}
	}
	// From the end, bin "1" holds the final base and so on backward.
	expect.EQ(t, binByName(t, end, "1"), []uint8{5})
	expect.EQ(t, binByName(t, end, "2"), []uint8{4})
	expect.EQ(t, binByName(t, end, "5"), []uint8{1})
	for i := 5; i < NumPositionBins; i++ {
		if name, vals := end.Bin(i); len(vals) != 0 {
			t.Errorf("end bin %s should be empty, got %v", name, vals)
		}
	}
}

func TestWideBinBoundaries(t *testing.T) {
	quals := make([]uint8, 25)
	for i := range quals {
		quals[i] = uint8(i)
	}
	start := NewQualityBins()
	start.AddFromStart(quals)
	end := NewQualityBins()
	end.AddFromEnd(quals)

	expect.EQ(t, binByName(t, start, "11-20"), quals[10:20])
	expect.EQ(t, binByName(t, start, "21-50"), quals[20:25])
	expect.EQ(t, len(binByName(t, start, "51-100")), 0)

	expect.EQ(t, binByName(t, end, "11-20"), quals[5:15])
	expect.EQ(t, binByName(t, end, "21-50"), quals[0:5])
	expect.EQ(t, len(binByName(t, end, "51-100")), 0)
}

func TestBinOrderIsFixed(t *testing.T) {
	b := NewQualityBins()
	want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
		"11-20", "21-50", "51-100", "101-200", "201-300"}
	expect.EQ(t, NumPositionBins, len(want))
	for i, name := range want {
		got, _ := b.Bin(i)
		expect.EQ(t, got, name)
	}
}
