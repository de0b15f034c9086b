package emit

import (
	"io"

	"github.com/OpenTraceLab/pinaf/pkg/catalog"
	"github.com/OpenTraceLab/pinaf/pkg/pins"
)

// Provenance names the inputs of a run. Empty fields are left out of the
// generated comment block.
type Provenance struct {
	Tool       string
	AF         string
	Prefix     string
	PrefixText string // copied verbatim after the --prefix line
	Board      string
}

// Definitions writes the pins C file.
func Definitions(w io.Writer, reg *pins.Registry, prov Provenance) error {
	ew := &errWriter{w: w}
	cat := reg.Catalog()

	tool := prov.Tool
	if tool == "" {
		tool = "make-pins"
	}
	ew.printf("// This file was automatically generated by %s\n", tool)
	ew.print("//\n")
	if prov.AF != "" {
		ew.printf("// --af %s\n", prov.AF)
	}
	if prov.Prefix != "" {
		ew.printf("// --prefix %s\n", prov.Prefix)
		ew.print("\n")
		ew.print(prov.PrefixText)
		ew.print("\n")
	}
	if prov.Board != "" {
		ew.printf("// --board %s\n", prov.Board)
	}

	for _, pin := range reg.BoardPins() {
		writePin(ew, cat, pin)
	}
	writeNamed(ew, cat, "cpu", reg.CPUNames())
	ew.print("\n")
	writeNamed(ew, cat, "board", reg.BoardNames())
	return ew.err
}

func writePin(ew *errWriter, cat *catalog.Catalog, pin *pins.Pin) {
	empty := pin.SupportedCount() == 0
	if empty {
		ew.print("// ")
	}
	ew.printf("const pin_af_obj_t %s[] = {\n", pin.AFArrayName(false))
	for _, af := range pin.AltFuncs {
		writeAltFunc(ew, cat, pin.MFP, af)
	}
	if empty {
		ew.print("// ")
	}
	ew.print("};\n\n")

	ew.printf("const pin_obj_t pin_%s_obj = PIN(%s, %d, %s, %s, %s, %d);\n\n",
		pin.Key.CPUName(), pin.Key.PortLetter(), pin.Key.Index, pin.MFP,
		pin.AFArrayName(true), pin.ADCNumString(), pin.ADCChannel)
}

// writeAltFunc writes one AF row. Unsupported slots keep the same columns but
// are commented out, so the table still documents every mux position.
func writeAltFunc(ew *errWriter, cat *catalog.Catalog, mfp string, af pins.AltFunc) {
	var cond []string
	if af.Supported {
		cond = cat.ConditionalVars(muxInstance(af.MuxName()))
		ew.condIf(cond)
		ew.print("  AF")
	} else {
		ew.print("  //")
	}
	ew.printf("(%s, %d, %s, %2d, %-8s, %2d, %-10s, %-8s), // %s\n",
		af.Pin.PortLetter(), af.Pin.Index, mfp, af.Slot,
		af.Peripheral, af.Unit(), af.Signal, af.Ptr(), af.Raw)
	ew.condEndif(cond)
}

func writeNamed(ew *errWriter, cat *catalog.Catalog, label string, named []pins.NamedPin) {
	ew.printf("%s const mp_rom_map_elem_t pin_%s_pins_locals_dict_table[] = {\n", cat.DictStorage(), label)
	for _, np := range named {
		ew.printf("  { MP_ROM_QSTR(MP_QSTR_%s), MP_ROM_PTR(&pin_%s_obj) },\n", np.Name, np.Key.CPUName())
	}
	ew.print("};\n")
	ew.printf("MP_DEFINE_CONST_DICT(pin_%s_pins_locals_dict, pin_%s_pins_locals_dict_table);\n", label, label)
}
