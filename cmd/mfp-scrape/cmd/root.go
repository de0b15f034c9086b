package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/OpenTraceLab/pinaf/pkg/emit"
	"github.com/OpenTraceLab/pinaf/pkg/mfp"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	inputFile  string
	outputFile string
	byValue    bool
)

var rootCmd = &cobra.Command{
	Use:   "mfp-scrape",
	Short: "Pin alternative generation from a BSP sys.h",
	Long: `Scans the multi-function pin settings of a BSP sys.h
(BSP/Library/StdDriver/inc/sys.h) and writes an AF table template that
make-pins can read.

Examples:
  mfp-scrape --input_file sys.h                        # writes template.csv
  mfp-scrape -i sys.h -o m55m1_af.csv --by-value       # slot = MFP register value`,
	Args:          cobra.NoArgs,
	RunE:          runScrape,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVarP(&inputFile, "input_file", "i", "", "BSP's sys.h")
	rootCmd.Flags().StringVarP(&outputFile, "output_file", "o", "template.csv", "CSV file")
	rootCmd.Flags().BoolVar(&byValue, "by-value", false,
		"place each signal at the column equal to its MFP value")
	rootCmd.MarkFlagRequired("input_file")
}

func runScrape(cmd *cobra.Command, args []string) error {
	rows, diags, err := mfp.ScanFile(inputFile, mfp.Options{ByValue: byValue})
	if err != nil {
		return err
	}
	if verbose {
		for _, d := range diags {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", d)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Pins: %d\n", len(rows))
	}

	var buf bytes.Buffer
	if err := mfp.WriteCSV(&buf, rows); err != nil {
		return err
	}
	if err := emit.WriteFileAtomic(outputFile, buf.Bytes()); err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Done")
	return nil
}
