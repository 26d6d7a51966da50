package clean

import "fmt"

// FileStats tallies what happened to every record of one input file.
type FileStats struct {
	// records read from the source
	Read int

	// records written to the sink
	Accepted int

	// rejected: shorter than the minimum length
	TooShort int

	// rejected: percentage of Ns above the threshold
	HighN int

	// rejected: sequence already seen in this file
	Duplicates int

	// subset of Duplicates matched via reverse complement
	RCDuplicates int
}

// Summary formats the stats as a single log entry for name.
func (s FileStats) Summary(name string) string {
	return fmt.Sprintf(
		"%s: processed=%d accepted=%d short=%d high_n=%d duplicates=%d rc_duplicates=%d",
		name, s.Read, s.Accepted, s.TooShort, s.HighN, s.Duplicates, s.RCDuplicates)
}
