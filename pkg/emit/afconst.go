package emit

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/OpenTraceLab/pinaf/pkg/pins"
)

// AFConstEntry is one row of the AF constant table.
type AFConstEntry struct {
	Name string
	Slot int
}

// AFConstTable maps every supported mux name of the board pins to its slot.
// A name seen twice keeps the slot it was seen with last. Rows are sorted by
// "name:slot".
func AFConstTable(reg *pins.Registry) []AFConstEntry {
	slots := make(map[string]int)
	for _, pin := range reg.BoardPins() {
		for _, af := range pin.AltFuncs {
			if af.Supported {
				slots[af.MuxName()] = af.Slot
			}
		}
	}
	out := make([]AFConstEntry, 0, len(slots))
	for name, slot := range slots {
		out = append(out, AFConstEntry{Name: name, Slot: slot})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key() < out[j].key() })
	return out
}

func (e AFConstEntry) key() string { return e.Name + ":" + strconv.Itoa(e.Slot) }

// AFConst writes the AF constant table.
func AFConst(w io.Writer, reg *pins.Registry) error {
	ew := &errWriter{w: w}
	cat := reg.Catalog()
	table := AFConstTable(reg)

	width := 0
	for _, e := range table {
		if n := len(e.key()); n > width {
			width = n
		}
	}
	width += 26

	for _, e := range table {
		cond := cat.ConditionalVars(muxInstance(e.Name))
		ew.condIf(cond)
		key := fmt.Sprintf("MP_ROM_QSTR(MP_QSTR_%s),", e.Name)
		ew.printf("    { %-*s MP_ROM_INT(%d) },\n", width, key, e.Slot)
		ew.condEndif(cond)
	}
	return ew.err
}
