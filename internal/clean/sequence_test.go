package clean

import (
	"bytes"
	"testing"
)

func Test_ReverseComplement(t *testing.T) {
	tests := []struct {
		seq, want string
	}{
		{"ACGT", "ACGT"},
		{"AAAA", "TTTT"},
		{"ACGTN", "NACGT"},
		{"acgtn", "nacgt"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ReverseComplement([]byte(tt.seq)); !bytes.Equal(got, []byte(tt.want)) {
			t.Errorf("ReverseComplement(%q) = %q, want %q", tt.seq, got, tt.want)
		}
	}

	// input is untouched
	in := []byte("AACC")
	ReverseComplement(in)
	if !bytes.Equal(in, []byte("AACC")) {
		t.Error("ReverseComplement mutated its input")
	}
}

func Test_countN(t *testing.T) {
	tests := []struct {
		seq  string
		want int
	}{
		{"", 0},
		{"ACGT", 0},
		{"ACGTNNNNNN", 6},
		{"nNnN", 4},
	}
	for _, tt := range tests {
		if got := countN([]byte(tt.seq)); got != tt.want {
			t.Errorf("countN(%q) = %d, want %d", tt.seq, got, tt.want)
		}
	}
}
