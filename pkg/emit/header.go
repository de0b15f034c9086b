package emit

import (
	"io"

	"github.com/OpenTraceLab/pinaf/pkg/pins"
)

// adcUnits is the number of pin_adcN tables the header declares.
const adcUnits = 3

// Header writes the pins header.
func Header(w io.Writer, reg *pins.Registry) error {
	ew := &errWriter{w: w}
	for _, pin := range reg.BoardPins() {
		name := pin.Key.CPUName()
		ew.printf("extern const pin_obj_t pin_%s_obj;\n", name)
		ew.printf("#define pin_%s (&pin_%s_obj)\n", name, name)
		if pin.SupportedCount() > 0 {
			ew.printf("extern const pin_af_obj_t pin_%s_af[];\n", name)
		}
	}
	for n := 1; n <= adcUnits; n++ {
		ew.printf("extern const pin_obj_t * const pin_adc%d[];\n", n)
	}
	for _, np := range reg.BoardNames() {
		ew.printf("#define pyb_pin_%s pin_%s\n", np.Name, np.Key.CPUName())
	}
	return ew.err
}
