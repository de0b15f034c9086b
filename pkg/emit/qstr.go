package emit

import (
	"io"
	"sort"
	"strings"

	"github.com/OpenTraceLab/pinaf/pkg/pins"
)

// QstrNames returns the sorted, de-duplicated identifiers of the qstr table.
func QstrNames(reg *pins.Registry) []string {
	set := make(map[string]struct{})
	for _, pin := range reg.BoardPins() {
		for _, q := range pin.QstrList() {
			set[q] = struct{}{}
		}
		set[pin.Key.CPUName()] = struct{}{}
	}
	for _, np := range reg.BoardNames() {
		set[np.Name] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for q := range set {
		names = append(names, q)
	}
	sort.Strings(names)
	return names
}

// Qstr writes the identifier table, one Q(name) per line.
func Qstr(w io.Writer, reg *pins.Registry) error {
	ew := &errWriter{w: w}
	cat := reg.Catalog()
	for _, q := range QstrNames(reg) {
		var cond []string
		if strings.HasPrefix(q, "AF_") {
			cond = cat.ConditionalVars(muxInstance(q))
		}
		ew.condIf(cond)
		ew.printf("Q(%s)\n", q)
		ew.condEndif(cond)
	}
	return ew.err
}
