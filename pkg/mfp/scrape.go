// Package mfp scrapes the multi-function pin settings of a vendor sys.h into
// an AF table template for make-pins.
package mfp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/pinaf/pkg/pins"
)

// MaxPin is the highest pin number a port register bank covers.
const MaxPin = 15

var (
	// ErrPinRange is reported for markers of pins above MaxPin.
	ErrPinRange = errors.New("mfp: pin has no MFP bank")
	// ErrNoValue is reported in by-value mode for settings without (N<<field).
	ErrNoValue = errors.New("mfp: setting has no field value")
	// ErrSlotTaken is reported in by-value mode when two settings share a value.
	ErrSlotTaken = errors.New("mfp: field value already used")
)

// specialIP lists peripherals the firmware names with an implicit instance 0.
var specialIP = map[string]bool{
	"EBI": true, "CCAP": true, "KPI": true, "GPIO": true,
	"SWDH": true, "USB": true, "HSUSB": true, "ICE": true,
}

// Options controls Scan.
type Options struct {
	// ByValue places every signal at the column equal to its MFP field
	// value, leaving unused values empty.
	ByValue bool
}

// Row is one AF table row: the settings found for a single pin.
type Row struct {
	Port    byte
	Pin     int
	Bank    string // MFP0..MFP3
	Signals []string
}

// PortName returns e.g. "PortA".
func (r Row) PortName() string { return "Port" + string(r.Port) }

// PinName returns e.g. "PA0".
func (r Row) PinName() string { return "P" + string(r.Port) + strconv.Itoa(r.Pin) }

// Bank returns the MFP register field of pin, four pins per register.
func Bank(pin int) (string, error) {
	if pin < 0 || pin > MaxPin {
		return "", fmt.Errorf("%w: %d", ErrPinRange, pin)
	}
	return "MFP" + strconv.Itoa(pin/4), nil
}

// Refine normalizes a peripheral and signal split from a setting name into
// the descriptor make-pins expects, e.g. ("EBI", "ALE") gives "EBI0_ALE".
// An empty signal defaults to the peripheral name without its digits.
func Refine(ip, signal string) string {
	if specialIP[ip] {
		ip += "0"
	}
	if signal == "" {
		signal = strings.TrimRight(ip, "0123456789")
	}
	switch ip {
	case "DMIC0":
		signal = "CH0_" + signal
	case "DMIC1":
		signal = "CH1_" + signal
		ip = "DMIC0"
	}
	return ip + "_" + signal
}

// Scan reads a sys.h and returns one row per pin marker that is followed by
// at least one matching setting. Skipped markers and settings are reported
// as diagnostics; the error is only for read failures.
func Scan(r io.Reader, name string, opts Options) ([]Row, []pins.Diagnostic, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return sc.Text(), true
	}

	var rows []Row
	var diags []pins.Diagnostic
	warn := func(line int, err error) {
		diags = append(diags, pins.Diagnostic{Path: name, Line: line, Err: err})
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if !strings.Contains(line, "MFP") || !strings.Contains(line, "/*") {
			continue
		}
		marker, err := parser.ParseMarker(line)
		if err != nil {
			continue
		}
		markerLine := lineNo
		index, err := marker.Index()
		if err != nil {
			warn(markerLine, err)
			continue
		}
		bank, err := Bank(index)
		if err != nil {
			warn(markerLine, fmt.Errorf("%w (%s)", err, marker.Pin))
			continue
		}

		row := Row{Port: marker.Port(), Pin: index, Bank: bank}
		prefix := fmt.Sprintf("SYS_GP%c_%s_%sMFP_", row.Port, bank, row.PinName())

		// The block runs until the first line with fewer than two words.
		for {
			line, ok := next()
			if !ok {
				break
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				break
			}
			rest, found := strings.CutPrefix(fields[1], prefix)
			if !found {
				continue
			}
			ip, signal, _ := strings.Cut(rest, "_")
			desc := Refine(ip, signal)

			if !opts.ByValue {
				row.Signals = append(row.Signals, desc)
				continue
			}
			setting, err := parser.ParseSetting(line)
			if err != nil {
				warn(lineNo, fmt.Errorf("mfp: %s: %w", fields[1], err))
				continue
			}
			value, ok := setting.FieldValue()
			if !ok {
				warn(lineNo, fmt.Errorf("%w: %s", ErrNoValue, fields[1]))
				continue
			}
			for len(row.Signals) <= value {
				row.Signals = append(row.Signals, "")
			}
			if row.Signals[value] != "" {
				warn(lineNo, fmt.Errorf("%w: %s and %s at %d", ErrSlotTaken, row.Signals[value], desc, value))
				continue
			}
			row.Signals[value] = desc
		}

		if len(row.Signals) > 0 {
			rows = append(rows, row)
		}
	}
	if err := sc.Err(); err != nil {
		return rows, diags, fmt.Errorf("mfp: read %s: %w", name, err)
	}
	return rows, diags, nil
}

// ScanFile scans the header at path.
func ScanFile(path string, opts Options) ([]Row, []pins.Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mfp: open %s: %w", path, err)
	}
	defer f.Close()
	return Scan(f, path, opts)
}

// CSVHeader is the first line of a generated template.
const CSVHeader = "#Port,Pin,MFPL/MFPH,SPIM,,,,,,,,,,,,,,,,,,,,,,,EVENTOUT,\n"

// WriteCSV writes rows as an AF table template. Every row ends with an
// EVENTOUT column.
func WriteCSV(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(CSVHeader)
	for _, row := range rows {
		bw.WriteString(row.PortName())
		bw.WriteByte(',')
		bw.WriteString(row.PinName())
		bw.WriteByte(',')
		bw.WriteString(row.Bank)
		bw.WriteByte(',')
		for _, sig := range row.Signals {
			bw.WriteString(sig)
			bw.WriteByte(',')
		}
		bw.WriteString("EVENTOUT, \n")
	}
	return bw.Flush()
}
