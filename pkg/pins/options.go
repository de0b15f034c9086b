package pins

import "fmt"

// Options controls how AF CSV rows are read.
type Options struct {
	PinCol int // column holding the pin name, e.g. "PA3" (default: 1)
	MFPCol int // column holding the MFP register name (default: 2)
	AFCol  int // first AF column (default: 3)
	MaxAF  int // number of AF columns; the next column is ADC metadata (default: 32)
}

// DefaultOptions returns the column layout of the vendor AF tables.
func DefaultOptions() Options {
	return Options{
		PinCol: 1,
		MFPCol: 2,
		AFCol:  3,
		MaxAF:  32,
	}
}

// Validate checks the column layout.
func (o Options) Validate() error {
	if o.PinCol < 0 || o.MFPCol < 0 || o.AFCol < 0 {
		return fmt.Errorf("pins: negative column offset (pin=%d mfp=%d af=%d)", o.PinCol, o.MFPCol, o.AFCol)
	}
	if o.MaxAF < 1 {
		return fmt.Errorf("pins: MaxAF must be at least 1, got %d", o.MaxAF)
	}
	return nil
}
