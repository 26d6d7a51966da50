// Package clean implements the streaming sequence-cleaning pipeline:
// reading FASTA/FASTQ records, dropping those that are too short, too
// ambiguous or already seen, and writing the survivors back out unchanged.
package clean

// Record is one sequence entry read from a FASTA/FASTQ file. ID is the
// full header line (without the leading '>' or '@') and is preserved
// verbatim on output. Qual is empty for FASTA records and the same
// length as Seq for FASTQ records.
//
// Fastq is set by the source from the file's detected format, not from
// the record's content: a FASTQ record with an empty sequence has an
// empty quality string but is still FASTQ and is written back as such.
//
// A Record returned by a Source is only valid until the next call to
// Next; the pipeline consumes each record before requesting another.
type Record struct {
	ID    []byte
	Seq   []byte
	Qual  []byte
	Fastq bool
}

// IsFastq reports whether the record came from a quality-annotated
// format.
func (r Record) IsFastq() bool {
	return r.Fastq
}

// Source produces records lazily, in file order. Next returns io.EOF
// once the underlying file is exhausted, and any other error for a
// malformed record or read failure.
type Source interface {
	Next() (Record, error)
	Close() error
}

// Sink writes accepted records back out in their original format.
type Sink interface {
	Write(Record) error
	Close() error
}
