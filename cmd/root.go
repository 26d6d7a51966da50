// Package cmd is for command line interactions with the sequence-cleaner
// application
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/metageni/Sequence-Cleaner/config"
	"github.com/metageni/Sequence-Cleaner/internal/clean"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sequence-cleaner",
	Short: "Remove duplicate, short and high-N sequences from FASTA/FASTQ files",
	Long: `Sequence-Cleaner streams every FASTA/FASTQ file in a query directory and
writes a cleaned copy of each to an output directory, dropping:

1. Exact duplicate sequences (case-insensitive)
2. Sequences shorter than --minimum-length
3. Sequences whose percentage of N bases exceeds --percentage-n

Records are written back unchanged, in their input order and original
format, and a per-file summary is logged.`,
	Version:       "1.2.1",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.New()
		if err != nil {
			return err
		}

		var logW io.Writer = os.Stderr
		if c.Log != "" {
			f, err := os.Create(c.Log)
			if err != nil {
				return fmt.Errorf("log: %w", err)
			}
			defer f.Close()
			logW = f
		}

		return clean.Run(c, logW)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	rootCmd.Flags().StringP("query", "q", "", "Path to directory with FASTA/FASTQ files")
	rootCmd.Flags().StringP("output", "o", "", "Path to output directory")
	rootCmd.Flags().Int("minimum-length", 0, "Minimum length allowed (0 allows all lengths)")
	rootCmd.Flags().Float64("percentage-n", 100, "Percentage of N bases allowed")
	rootCmd.Flags().Bool("keep-all-duplicates", false, "Keep all duplicate sequences")
	rootCmd.Flags().Bool("rc-duplicates", false, "Also remove reverse-complement duplicates")
	rootCmd.Flags().Bool("global-duplicates", false, "Deduplicate across all input files instead of per file")
	rootCmd.Flags().StringP("log", "l", "", "Path to log file (default: stderr)")

	rootCmd.MarkFlagRequired("query")
	rootCmd.MarkFlagRequired("output")

	// bind the parameters to viper
	viper.BindPFlags(rootCmd.Flags())
}
