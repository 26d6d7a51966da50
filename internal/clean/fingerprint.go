package clean

import "crypto/sha256"

// FP is a compact identity for a sequence's base content. SHA-256 keeps
// the collision odds negligible even for files with millions of records,
// while the tracker only ever holds 32 bytes per unique sequence.
type FP [sha256.Size]byte

// Fingerprint digests a sequence after folding it to upper case, so that
// "acgt" and "ACGT" are the same sequence. Nothing else is normalized:
// a single differing base (N included) yields a different fingerprint.
func Fingerprint(sequence []byte) FP {
	h := sha256.New()

	// fold case in small chunks to avoid copying the whole sequence
	var buf [256]byte
	for len(sequence) > 0 {
		n := copy(buf[:], sequence)
		for i := 0; i < n; i++ {
			if c := buf[i]; 'a' <= c && c <= 'z' {
				buf[i] = c - ('a' - 'A')
			}
		}
		h.Write(buf[:n])
		sequence = sequence[n:]
	}

	var fp FP
	h.Sum(fp[:0])
	return fp
}
