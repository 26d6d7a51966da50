package clean

// Decision is the outcome of filtering a single record.
type Decision int

const (
	// Accept passes the record on to duplicate tracking.
	Accept Decision = iota

	// RejectTooShort drops records below the minimum length.
	RejectTooShort

	// RejectTooAmbiguous drops records with too high a percentage of Ns.
	RejectTooAmbiguous
)

// Filter holds the immutable length and ambiguity thresholds for a run.
type Filter struct {
	// records shorter than this are dropped (0 keeps everything)
	MinLength int

	// maximum percentage of N bases allowed, 0-100 (100 keeps everything)
	PercentageN float64
}

// Evaluate applies the checks in order and returns the first failure:
// length before ambiguity, so a short record is always RejectTooShort no
// matter how many Ns it carries. A zero-length sequence counts as 0% N.
func (f Filter) Evaluate(r Record) Decision {
	if len(r.Seq) < f.MinLength {
		return RejectTooShort
	}
	if len(r.Seq) > 0 {
		percent := float64(countN(r.Seq)) / float64(len(r.Seq)) * 100
		if percent > f.PercentageN {
			return RejectTooAmbiguous
		}
	}
	return Accept
}
