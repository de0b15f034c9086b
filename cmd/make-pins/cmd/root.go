package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/OpenTraceLab/pinaf/pkg/catalog"
	"github.com/OpenTraceLab/pinaf/pkg/emit"
	"github.com/OpenTraceLab/pinaf/pkg/pins"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	afFile      string
	boardFile   string
	prefixFile  string
	hdrFile     string
	qstrFile    string
	afConstFile string
	outputFile  string
	family      string
	catalogFile string
	pinCol      int
	mfpCol      int
	afCol       int
)

var rootCmd = &cobra.Command{
	Use:   "make-pins",
	Short: "Generate pin and alternate function tables for the firmware build",
	Long: `Reads a vendor AF table (CSV) and a board pin map and writes the pin
definitions, the pins header, the qstr identifier table and the AF constant
table the firmware compiles against.

Examples:
  make-pins --board boards/NUMAKER/pins.csv --prefix m26x_prefix.c > build/pins.c
  make-pins --family n9h26 -b pins.csv -o build/pins.c
  make-pins --catalog families.cat --family custom -a af.csv -b pins.csv -v`,
	Args:          cobra.NoArgs,
	RunE:          runMakePins,
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

	rootCmd.Flags().StringVarP(&afFile, "af", "a", "",
		"AF table CSV (default: the family's AF table)")
	rootCmd.Flags().StringVarP(&boardFile, "board", "b", "",
		"board pin map CSV (name,pin)")
	rootCmd.Flags().StringVarP(&prefixFile, "prefix", "p", "",
		"C source copied into the definitions (default: the family's prefix file)")
	rootCmd.Flags().StringVarP(&hdrFile, "hdr", "r", "build/pins.h",
		"pins header output")
	rootCmd.Flags().StringVarP(&qstrFile, "qstr", "q", "build/pins_qstr.h",
		"qstr table output")
	rootCmd.Flags().StringVar(&afConstFile, "af-const", "build/pins_af_const.h",
		"AF constant table output")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "-",
		"definitions output (- for stdout)")
	rootCmd.Flags().StringVar(&family, "family", catalog.DefaultFamily,
		fmt.Sprintf("built-in peripheral catalog %v", catalog.Families()))
	rootCmd.Flags().StringVar(&catalogFile, "catalog", "",
		"catalog file overriding the built-in families")

	defaults := pins.DefaultOptions()
	rootCmd.Flags().IntVar(&pinCol, "pin-col", defaults.PinCol, "AF table column holding the pin name")
	rootCmd.Flags().IntVar(&mfpCol, "mfp-col", defaults.MFPCol, "AF table column holding the MFP register field")
	rootCmd.Flags().IntVar(&afCol, "af-col", defaults.AFCol, "AF table column of mux slot 0")
}

func runMakePins(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	afPath := afFile
	if !cmd.Flags().Changed("af") {
		afPath = cat.DefaultAF()
	}
	prefixPath := prefixFile
	if !cmd.Flags().Changed("prefix") {
		prefixPath = cat.DefaultPrefix()
	}

	opts := pins.DefaultOptions()
	opts.PinCol = pinCol
	opts.MFPCol = mfpCol
	opts.AFCol = afCol

	reg, err := pins.NewRegistry(cat, opts)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(stderr, "Family: %s\n", cat.Family())
		signals := 0
		for _, p := range cat.Peripherals() {
			signals += len(cat.Signals(p))
		}
		fmt.Fprintf(stderr, "Peripherals: %d (%d signals)\n", len(cat.Peripherals()), signals)
		fmt.Fprintf(stderr, "Reading AF table: %s\n", afPath)
	}
	diags, err := reg.LoadAFFile(afPath)
	if err != nil {
		return err
	}
	report(stderr, diags)

	if boardFile != "" {
		if verbose {
			fmt.Fprintf(stderr, "Reading board pins: %s\n", boardFile)
		}
		diags, err := reg.LoadBoardFile(boardFile)
		if err != nil {
			return err
		}
		report(stderr, diags)
	}

	prov := emit.Provenance{
		Tool:  "make-pins",
		AF:    afPath,
		Board: boardFile,
	}
	if prefixPath != "" {
		data, err := os.ReadFile(prefixPath)
		if err != nil {
			return fmt.Errorf("failed to read prefix file: %w", err)
		}
		prov.Prefix = prefixPath
		prov.PrefixText = string(data)
	}

	if verbose {
		fmt.Fprintf(stderr, "Pins: %d cpu, %d board\n", len(reg.Pins()), len(reg.BoardNames()))
		if unknown := unknownPeripherals(reg); len(unknown) > 0 {
			fmt.Fprintf(stderr, "Unknown peripherals: %s\n", strings.Join(unknown, " "))
		}
	}

	return emit.Generate(reg, prov, emit.Targets{
		Definitions: outputFile,
		Header:      hdrFile,
		Qstr:        qstrFile,
		AFConst:     afConstFile,
		Stdout:      cmd.OutOrStdout(),
	})
}

// loadCatalog returns the catalog file's family when --catalog is set, the
// built-in family otherwise.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if catalogFile == "" {
		return catalog.Lookup(family)
	}
	name := ""
	if cmd.Flags().Changed("family") {
		name = family
	}
	return catalog.LoadFile(catalogFile, name)
}

// unknownPeripherals lists the peripherals of board pin AFs that the catalog
// has no entry for at all.
func unknownPeripherals(reg *pins.Registry) []string {
	cat := reg.Catalog()
	seen := make(map[string]bool)
	var out []string
	for _, pin := range reg.BoardPins() {
		for _, af := range pin.AltFuncs {
			if af.Peripheral == "" || seen[af.Peripheral] || cat.Known(af.Peripheral) {
				continue
			}
			seen[af.Peripheral] = true
			out = append(out, af.Peripheral)
		}
	}
	sort.Strings(out)
	return out
}

func report(w io.Writer, diags []pins.Diagnostic) {
	if !verbose {
		return
	}
	for _, d := range diags {
		fmt.Fprintf(w, "skipped %s\n", d)
	}
}
