package emit

import (
	"fmt"
	"io"
	"strings"
)

// errWriter remembers the first write error so the renderers can print
// unconditionally and check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

// condIf writes the #if guarding an entry, if vars is non-empty.
// Macros named *ENABLE* must also be true, the rest only defined.
func (ew *errWriter) condIf(vars []string) {
	if len(vars) == 0 {
		return
	}
	conds := make([]string, len(vars))
	for i, v := range vars {
		if strings.Contains(v, "ENABLE") {
			conds[i] = fmt.Sprintf("(defined(%s) && %s)", v, v)
		} else {
			conds[i] = fmt.Sprintf("defined(%s)", v)
		}
	}
	ew.printf("#if %s\n", strings.Join(conds, " || "))
}

func (ew *errWriter) condEndif(vars []string) {
	if len(vars) > 0 {
		ew.print("#endif\n")
	}
}

// muxInstance returns the peripheral+instance token of a mux name,
// e.g. "UART0" for AF_PA3_UART0_TXD.
func muxInstance(muxName string) string {
	words := strings.SplitN(muxName, "_", 4)
	if len(words) < 3 {
		return ""
	}
	return words[2]
}
