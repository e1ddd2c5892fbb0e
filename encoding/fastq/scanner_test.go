package fastq

import (
	"bytes"
	"testing"
)

const fq = `@c5ca52b5-0627-4483-a5c4-4f3a1f5fe9a5 runid=7a75 read=107 ch=441
ATACAGGCCTGACCACTGTGCCCAGGCTACCTGATTACTGAACAGAGAATCGTTGTAAAT
+
%%''--//038;<<=??@AABCCDDEEFFGGHHIIJJKKLLMMNNOOPPQQRRSSTTUUV
@9c2a6e74-51c1-44cd-8f23-b04c54b3ba06 runid=7a75 read=108 ch=127
CTCAACTCTGAGCCAGACAGAAATACTTTCCTTTGAGTTACACCATTCTTTTTCAACATA
+
&&((..00149<<==??@@ABBCCDDEEFFGGHHIIJJKKLLMMNNOOPPQQRRSSTTUV
`

func stringScanner(s string) *Scanner {
	return NewScanner(bytes.NewReader([]byte(s)), All)
}

func scanErr(s string) error {
	scan := stringScanner(s)
	var r Read
	for scan.Scan(&r) {
	}
	return scan.Err()
}

func TestFASTQ(t *testing.T) {
	s := stringScanner(fq)
	var r Read
	if !s.Scan(&r) {
		t.Fatal(s.Err())
	}
	expect := Read{
		ID:   "@c5ca52b5-0627-4483-a5c4-4f3a1f5fe9a5 runid=7a75 read=107 ch=441",
		Seq:  "ATACAGGCCTGACCACTGTGCCCAGGCTACCTGATTACTGAACAGAGAATCGTTGTAAAT",
		Unk:  "+",
		Qual: "%%''--//038;<<=??@AABCCDDEEFFGGHHIIJJKKLLMMNNOOPPQQRRSSTTUUV",
	}
	if got, want := r, expect; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !s.Scan(&r) {
		t.Fatal(s.Err())
	}
	if got, want := s.N(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if s.Scan(&r) {
		t.Error("expected EOF")
	}
	if s.Err() != nil {
		t.Error(s.Err())
	}
}

func TestFASTQFields(t *testing.T) {
	s := NewScanner(bytes.NewReader([]byte(fq)), Seq|Qual)
	var r Read
	if !s.Scan(&r) {
		t.Fatal(s.Err())
	}
	if r.ID != "" || r.Unk != "" {
		t.Errorf("unrequested fields filled: %v", r)
	}
	if len(r.Seq) != 60 || len(r.Qual) != 60 {
		t.Errorf("got lengths %d, %d, want 60", len(r.Seq), len(r.Qual))
	}
}

func TestFASTQErrors(t *testing.T) {
	cases := []struct {
		in  string
		err error
	}{
		{"", nil},
		{"@r1\nACGT\n+\nIII", ErrMismatch},
		{"@r1\nACGT\n+\n", ErrShort},
		{"@r1\nACGT\n+", ErrShort},
		{"@r1\nACGT\nIIII\nIIII", ErrInvalid},
		{"r1\nACGT\n+\nIIII", ErrInvalid},
		{"@r1\nACGT\n+\nIIII\n@r2\nAC", ErrShort},
	}
	for _, c := range cases {
		if got, want := scanErr(c.in), c.err; got != want {
			t.Errorf("%q: got %v, want %v", c.in, got, want)
		}
	}
}
