package clean

// rcTable maps each nucleotide to its complement, both cases, with every
// other byte mapping to itself. Unresolved bases (N/n) complement to
// themselves.
var rcTable [256]byte

func init() {
	for i := range rcTable {
		rcTable[i] = byte(i)
	}
	for _, p := range [][2]byte{
		{'A', 'T'}, {'T', 'A'}, {'G', 'C'}, {'C', 'G'},
		{'a', 't'}, {'t', 'a'}, {'g', 'c'}, {'c', 'g'},
	} {
		rcTable[p[0]] = p[1]
	}
}

// ReverseComplement returns the reverse complement of sequence as a new
// slice; the input is left untouched.
func ReverseComplement(sequence []byte) []byte {
	rc := make([]byte, len(sequence))
	for i, c := range sequence {
		rc[len(sequence)-1-i] = rcTable[c]
	}
	return rc
}

// countN counts unresolved bases (N or n) in sequence.
func countN(sequence []byte) int {
	n := 0
	for _, c := range sequence {
		if c == 'N' || c == 'n' {
			n++
		}
	}
	return n
}
