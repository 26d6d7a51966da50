package clean

import (
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// fastxSource adapts a fastx.Reader to the Source interface. fastx
// detects FASTA vs FASTQ by itself and handles gzipped files, so one
// Source covers every supported input.
type fastxSource struct {
	reader *fastx.Reader
}

// OpenSource opens path for streaming record reads.
func OpenSource(path string) (Source, error) {
	reader, err := fastx.NewReader(seq.DNAredundant, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &fastxSource{reader: reader}, nil
}

func (s *fastxSource) Next() (Record, error) {
	record, err := s.reader.Read()
	if err == io.EOF {
		return Record{}, io.EOF
	}
	if err != nil {
		return Record{}, fmt.Errorf("read record: %w", err)
	}

	// the reader knows the file's format after the first record; an
	// empty quality string alone does not make a record FASTA
	return Record{
		ID:    record.Name,
		Seq:   record.Seq.Seq,
		Qual:  record.Seq.Qual,
		Fastq: s.reader.IsFastq,
	}, nil
}

func (s *fastxSource) Close() error {
	s.reader.Close()
	return nil
}

// fastxSink writes records through xopen so output named *.gz is
// compressed transparently.
type fastxSink struct {
	w *xopen.Writer
}

// OpenSink creates (or truncates) path for record writes.
func OpenSink(path string) (Sink, error) {
	w, err := xopen.Wopen(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &fastxSink{w: w}, nil
}

// Write reproduces the record byte for byte, without line wrapping:
// ">id\nSEQ\n" for FASTA, "@id\nSEQ\n+\nQUAL\n" for FASTQ.
func (s *fastxSink) Write(r Record) error {
	var err error
	if r.IsFastq() {
		_, err = fmt.Fprintf(s.w, "@%s\n%s\n+\n%s\n", r.ID, r.Seq, r.Qual)
	} else {
		_, err = fmt.Fprintf(s.w, ">%s\n%s\n", r.ID, r.Seq)
	}
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func (s *fastxSink) Close() error {
	return s.w.Close()
}
