package pins

import (
	"strconv"
	"strings"

	"github.com/OpenTraceLab/pinaf/pkg/catalog"
)

// AltFunc is one alternate function a pin can be muxed to.
type AltFunc struct {
	Pin         PinKey
	Slot        int    // mux position; aliases share a slot
	Raw         string // descriptor after rewrite rules, e.g. "UART0_TXD"
	Peripheral  string // e.g. "UART"
	Instance    int
	HasInstance bool
	Signal      string // e.g. "TXD"
	Supported   bool
}

// Classify decomposes one AF descriptor and checks it against cat.
func Classify(cat *catalog.Catalog, key PinKey, slot int, descriptor string) AltFunc {
	descriptor = cat.Rewrite(descriptor)

	af := AltFunc{
		Pin:  key,
		Slot: slot,
		Raw:  descriptor,
	}

	periph, signal, _ := strings.Cut(descriptor, "_")
	af.Peripheral, af.Instance, af.HasInstance = catalog.SplitInstance(periph)
	af.Signal = signal
	af.Supported = cat.Supports(af.Peripheral, af.Signal)
	return af
}

// ParseAltFuncs expands a CSV cell into its slots. A '/' separates aliases of
// the same mux position; all of them share slot.
func ParseAltFuncs(cat *catalog.Catalog, key PinKey, slot int, cell string) []AltFunc {
	if cell == "" {
		return nil
	}
	var out []AltFunc
	for _, alias := range strings.Split(cell, "/") {
		if alias == "" {
			continue
		}
		out = append(out, Classify(cat, key, slot, alias))
	}
	return out
}

// Unit returns the instance number, or 0 for unnumbered peripherals.
func (af AltFunc) Unit() int {
	if af.HasInstance {
		return af.Instance
	}
	return 0
}

// Ptr returns the numbered peripheral, e.g. "UART0", or just "EBI".
func (af AltFunc) Ptr() string {
	if !af.HasInstance {
		return af.Peripheral
	}
	return af.Peripheral + strconv.Itoa(af.Instance)
}

// MuxName returns the key shared by all generated artifacts,
// e.g. AF_PA3_UART0_TXD.
func (af AltFunc) MuxName() string {
	return "AF_P" + af.Pin.CPUName() + "_" + af.Peripheral + strconv.Itoa(af.Unit()) + "_" + af.Signal
}

// MuxNameIndex returns MuxName with the slot appended, e.g. AF_PA3_UART0_TXD:1.
func (af AltFunc) MuxNameIndex() string {
	return af.MuxName() + ":" + strconv.Itoa(af.Slot)
}
