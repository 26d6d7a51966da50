package clean

// Tracker remembers which sequence fingerprints have already been
// emitted. It holds only 32-byte digests, never the records themselves,
// so a file with millions of reads stays cheap to deduplicate.
//
// A Tracker is scoped to one input file unless the caller deliberately
// shares it across files; it is not safe for concurrent use.
type Tracker struct {
	seen    map[FP]struct{}
	keepAll bool
}

// NewTracker returns an empty tracker. With keepAll set the tracker
// performs no deduplication at all: IsNew always reports true and
// nothing is recorded.
func NewTracker(keepAll bool) *Tracker {
	return &Tracker{
		seen:    make(map[FP]struct{}),
		keepAll: keepAll,
	}
}

// IsNew reports whether fp has not been seen before, recording it as
// seen when new.
func (t *Tracker) IsNew(fp FP) bool {
	if t.keepAll {
		return true
	}
	if _, ok := t.seen[fp]; ok {
		return false
	}
	t.seen[fp] = struct{}{}
	return true
}

// Contains reports whether fp has been recorded, without recording it.
func (t *Tracker) Contains(fp FP) bool {
	if t.keepAll {
		return false
	}
	_, ok := t.seen[fp]
	return ok
}

// Reset clears all recorded fingerprints. Called between files so that
// duplicate detection is per file, not global.
func (t *Tracker) Reset() {
	t.seen = make(map[FP]struct{})
}
