package clean

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/metageni/Sequence-Cleaner/config"
)

// WantedFiles filters names down to the sequence files the cleaner
// handles (.fasta/.fastq/.fna, optionally gzipped) and sorts them so a
// run processes files in a deterministic order.
func WantedFiles(names []string) []string {
	var wanted []string
	for _, name := range names {
		base := name
		if strings.EqualFold(filepath.Ext(base), ".gz") {
			base = strings.TrimSuffix(base, filepath.Ext(base))
		}
		switch strings.ToLower(filepath.Ext(base)) {
		case ".fasta", ".fastq", ".fna":
			wanted = append(wanted, name)
		}
	}
	sort.Strings(wanted)
	return wanted
}

// Run cleans every sequence file in the query directory into the output
// directory, one cleaned file per input with the same base name, and
// logs a per-file summary to logW.
//
// Each file is an independent unit of work: a file that fails to parse
// or write is logged and skipped, the rest still run, and the combined
// error is returned at the end so the caller can exit non-zero.
func Run(c config.Config, logW io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	logger := log.New(logW, "", log.LstdFlags)

	info, err := os.Stat(c.Query)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("query: %s is not a directory", c.Query)
	}

	if _, err := os.Stat(c.Output); os.IsNotExist(err) {
		if err := os.MkdirAll(c.Output, 0755); err != nil {
			return fmt.Errorf("output: %w", err)
		}
		logger.Printf("OUTPUT: %s did not exist - created it", c.Output)
	} else if err != nil {
		// e.g. permission denied: fail now, not per file
		return fmt.Errorf("output: %w", err)
	}

	entries, err := os.ReadDir(c.Query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	pipeline := Pipeline{
		Filter: Filter{
			MinLength:   c.MinimumLength,
			PercentageN: c.PercentageN,
		},
		RCDuplicates: c.RCDuplicates,
	}
	tracker := NewTracker(c.KeepAllDuplicates)

	failed := 0
	for i, name := range WantedFiles(names) {
		logger.Printf("1.%d) cleaning %s", i+1, filepath.Join(c.Query, name))

		if !c.GlobalDuplicates {
			tracker.Reset()
		}

		stats, err := cleanFile(
			filepath.Join(c.Query, name),
			filepath.Join(c.Output, name),
			pipeline,
			tracker,
		)
		if err != nil {
			logger.Printf("ERROR %s: %v", name, err)
			failed++
			continue
		}
		logger.Printf("1.%d) %s", i+1, stats.Summary(name))
	}

	logger.Printf("done")
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

// cleanFile streams one input file through the pipeline into its
// cleaned counterpart. Output already written when an error hits is
// left in place.
func cleanFile(in, out string, pipeline Pipeline, tracker *Tracker) (FileStats, error) {
	src, err := OpenSource(in)
	if err != nil {
		return FileStats{}, err
	}
	defer src.Close()

	sink, err := OpenSink(out)
	if err != nil {
		return FileStats{}, err
	}

	stats, err := pipeline.Process(src, sink, tracker)
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	return stats, err
}
