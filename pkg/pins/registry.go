package pins

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/pinaf/pkg/catalog"
)

var (
	// ErrUnknownPin is returned for board rows naming a pin the AF table lacks.
	ErrUnknownPin = errors.New("pins: pin not in AF table")
	// ErrDuplicatePin is returned for AF rows repeating an earlier pin.
	ErrDuplicatePin = errors.New("pins: duplicate pin")
	// ErrShortRow is returned for rows missing a required column.
	ErrShortRow = errors.New("pins: row too short")
)

// Diagnostic records an input row that was skipped.
type Diagnostic struct {
	Path string
	Line int
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %v", d.Path, d.Line, d.Err)
}

// Registry owns every CPU pin read from the AF table, in row order, and the
// board pins that name some of them. It is built once and then only read.
type Registry struct {
	cat   *catalog.Catalog
	opts  Options
	pins  []*Pin
	index map[PinKey]int
	board []NamedPin
}

// NewRegistry creates an empty registry classifying AFs against cat.
func NewRegistry(cat *catalog.Catalog, opts Options) (*Registry, error) {
	if cat == nil {
		return nil, fmt.Errorf("pins: nil catalog")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Registry{
		cat:   cat,
		opts:  opts,
		index: make(map[PinKey]int),
	}, nil
}

// Catalog returns the catalog the registry classifies against.
func (r *Registry) Catalog() *catalog.Catalog { return r.cat }

// AddAFRow parses one AF table row and appends the pin.
func (r *Registry) AddAFRow(row []string) error {
	if len(row) <= r.opts.PinCol {
		return ErrShortRow
	}
	key, err := ParsePortPin(row[r.opts.PinCol])
	if err != nil {
		return err
	}
	if len(row) <= r.opts.MFPCol {
		return fmt.Errorf("%w: %s has no MFP column", ErrShortRow, key)
	}
	if _, exists := r.index[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePin, key)
	}

	pin := &Pin{Key: key, MFP: row[r.opts.MFPCol]}
	for col := r.opts.AFCol; col < len(row); col++ {
		slot := col - r.opts.AFCol
		switch {
		case slot < r.opts.MaxAF:
			pin.AltFuncs = append(pin.AltFuncs, ParseAltFuncs(r.cat, key, slot, row[col])...)
		case slot == r.opts.MaxAF:
			pin.parseADC(row[col])
		}
	}

	r.index[key] = len(r.pins)
	r.pins = append(r.pins, pin)
	return nil
}

// MarkBoardPin parses a board row (name, pin, ...) and flags the pin.
func (r *Registry) MarkBoardPin(row []string) error {
	if len(row) < 2 {
		return ErrShortRow
	}
	key, err := ParsePortPin(row[1])
	if err != nil {
		return err
	}
	pin, ok := r.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPin, key)
	}
	pin.BoardPin = true
	r.board = append(r.board, NamedPin{Name: row[0], Key: key})
	return nil
}

// Lookup returns the pin for key.
func (r *Registry) Lookup(key PinKey) (*Pin, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.pins[i], true
}

// Pins returns every CPU pin in AF table order.
func (r *Registry) Pins() []*Pin {
	return r.pins
}

// BoardPins returns the CPU pins exposed on the board, in AF table order.
func (r *Registry) BoardPins() []*Pin {
	var out []*Pin
	for _, p := range r.pins {
		if p.BoardPin {
			out = append(out, p)
		}
	}
	return out
}

// CPUNames returns the board pins named by their CPU name, e.g. "A3".
func (r *Registry) CPUNames() []NamedPin {
	var out []NamedPin
	for _, p := range r.pins {
		if p.BoardPin {
			out = append(out, NamedPin{Name: p.Key.CPUName(), Key: p.Key})
		}
	}
	return out
}

// BoardNames returns the board names in board file order.
func (r *Registry) BoardNames() []NamedPin {
	return r.board
}

// LoadAF reads an AF table. Rows that do not parse are skipped and reported.
func (r *Registry) LoadAF(rd io.Reader, name string) ([]Diagnostic, error) {
	return readRows(rd, name, r.AddAFRow)
}

// LoadBoard reads a board table. Rows that do not parse or name an unknown
// pin are skipped and reported.
func (r *Registry) LoadBoard(rd io.Reader, name string) ([]Diagnostic, error) {
	return readRows(rd, name, r.MarkBoardPin)
}

// LoadAFFile reads the AF table at path.
func (r *Registry) LoadAFFile(path string) ([]Diagnostic, error) {
	return loadFile(path, r.LoadAF)
}

// LoadBoardFile reads the board table at path.
func (r *Registry) LoadBoardFile(path string) ([]Diagnostic, error) {
	return loadFile(path, r.LoadBoard)
}

func loadFile(path string, load func(io.Reader, string) ([]Diagnostic, error)) ([]Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pins: open %s: %w", path, err)
	}
	defer f.Close()
	return load(f, path)
}

func readRows(rd io.Reader, name string, add func([]string) error) ([]Diagnostic, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var diags []Diagnostic
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return diags, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				diags = append(diags, Diagnostic{Path: name, Line: perr.Line, Err: err})
				continue
			}
			return diags, fmt.Errorf("pins: read %s: %w", name, err)
		}
		if err := add(row); err != nil {
			line, _ := cr.FieldPos(0)
			diags = append(diags, Diagnostic{Path: name, Line: line, Err: err})
		}
	}
}
