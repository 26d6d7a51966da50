package clean

import (
	"errors"
	"io"
)

// Pipeline streams one file's records through the filter and the
// duplicate tracker into a sink, one record at a time. It never buffers
// the file: memory use is bounded by the tracker's fingerprint set.
type Pipeline struct {
	// length/ambiguity thresholds, immutable for the run
	Filter Filter

	// also treat a record as a duplicate when the reverse complement
	// of its sequence has already been emitted
	RCDuplicates bool
}

// Process runs src to exhaustion, writing accepted records to sink in
// input order, and returns the tally. The tracker is owned by the
// caller: pass a fresh one per file for per-file deduplication, or a
// shared one for a global pass over many files.
//
// On a read or write error the file's processing stops immediately:
// records already written stay written and the stats cover everything
// up to the failure.
func (p Pipeline) Process(src Source, sink Sink, tracker *Tracker) (FileStats, error) {
	var stats FileStats

	for {
		record, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		stats.Read++

		// filter first: a record rejected here is never fingerprinted,
		// so it cannot shadow a longer duplicate later in the file
		switch p.Filter.Evaluate(record) {
		case RejectTooShort:
			stats.TooShort++
			continue
		case RejectTooAmbiguous:
			stats.HighN++
			continue
		}

		// a reverse-complement hit does not record the record's own
		// fingerprint: the orientation seen first owns the slot
		fp := Fingerprint(record.Seq)
		if p.RCDuplicates && !tracker.Contains(fp) &&
			tracker.Contains(Fingerprint(ReverseComplement(record.Seq))) {
			stats.Duplicates++
			stats.RCDuplicates++
			continue
		}
		if !tracker.IsNew(fp) {
			stats.Duplicates++
			continue
		}

		if err := sink.Write(record); err != nil {
			return stats, err
		}
		stats.Accepted++
	}
}
