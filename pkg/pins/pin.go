package pins

// Pin is a physical CPU pin with its alternate functions.
type Pin struct {
	Key        PinKey
	MFP        string // MFP register field, e.g. "MFP0"
	AltFuncs   []AltFunc
	ADCMask    uint8 // bit n-1 set for ADCn
	ADCChannel int
	BoardPin   bool
}

// SupportedCount returns the number of slots the firmware supports.
func (p *Pin) SupportedCount() int {
	n := 0
	for _, af := range p.AltFuncs {
		if af.Supported {
			n++
		}
	}
	return n
}

// AFArrayName returns the C name of the pin's AF array, e.g. "pin_A3_af".
// With nullIfEmpty it returns "NULL" for a pin without supported slots.
func (p *Pin) AFArrayName(nullIfEmpty bool) string {
	if nullIfEmpty && p.SupportedCount() == 0 {
		return "NULL"
	}
	return "pin_" + p.Key.CPUName() + "_af"
}

// QstrList returns the mux names of the supported slots.
func (p *Pin) QstrList() []string {
	var out []string
	for _, af := range p.AltFuncs {
		if af.Supported {
			out = append(out, af.MuxName())
		}
	}
	return out
}

// NamedPin pairs a symbolic name with a pin.
type NamedPin struct {
	Name string
	Key  PinKey
}
