package clean

import (
	"math/rand"
	"testing"
)

// case variants of the same sequence are the same fingerprint
func Test_Fingerprint_caseInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"ACGT", "acgt"},
		{"AcGtN", "aCgTn"},
		{"NNNN", "nnnn"},
		{"", ""},
	}
	for _, p := range pairs {
		if Fingerprint([]byte(p[0])) != Fingerprint([]byte(p[1])) {
			t.Errorf("fingerprints of %q and %q differ", p[0], p[1])
		}
	}
}

// a single differing base, N included, is a different sequence
func Test_Fingerprint_contentExact(t *testing.T) {
	base := "ACGTACGTAC"
	others := []string{"ACGTACGTAN", "ACGTACGTA", "ACGTACGTACA", "NCGTACGTAC"}
	for _, o := range others {
		if Fingerprint([]byte(base)) == Fingerprint([]byte(o)) {
			t.Errorf("fingerprints of %q and %q collide", base, o)
		}
	}
}

func Test_Fingerprint_empty(t *testing.T) {
	empty := Fingerprint(nil)
	if empty != Fingerprint([]byte{}) {
		t.Error("nil and empty sequences should fingerprint the same")
	}
	if empty == Fingerprint([]byte("A")) {
		t.Error("empty sequence collides with a one-base sequence")
	}
}

// no collisions across a random corpus of distinct sequences
func Test_Fingerprint_noCollisions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	bases := []byte("ACGTN")

	seen := make(map[FP]string, 20000)
	generated := make(map[string]bool, 20000)
	for i := 0; i < 20000; i++ {
		seq := make([]byte, 20+rng.Intn(180))
		for j := range seq {
			seq[j] = bases[rng.Intn(len(bases))]
		}
		if generated[string(seq)] {
			continue
		}
		generated[string(seq)] = true

		fp := Fingerprint(seq)
		if prev, ok := seen[fp]; ok {
			t.Fatalf("collision between %q and %q", prev, seq)
		}
		seen[fp] = string(seq)
	}
}

// fingerprinting long sequences exercises the chunked case folding
func Test_Fingerprint_longSequence(t *testing.T) {
	long := make([]byte, 1<<16)
	longLower := make([]byte, len(long))
	for i := range long {
		long[i] = "ACGT"[i%4]
		longLower[i] = "acgt"[i%4]
	}
	if Fingerprint(long) != Fingerprint(longLower) {
		t.Error("case folding broke across chunk boundaries")
	}

	// the input must not be modified by fingerprinting
	if longLower[0] != 'a' {
		t.Error("Fingerprint mutated its input")
	}
}
