package pins

import (
	"fmt"
	"strconv"
)

// MaxPort is the highest port number (K).
const MaxPort = 'K' - 'A'

// PinKey identifies a physical pin by port (0 = A .. 10 = K) and index.
type PinKey struct {
	Port  uint8
	Index int
}

// PortLetter returns the port as a letter, e.g. "A".
func (k PinKey) PortLetter() string {
	return string(rune('A' + k.Port))
}

// CPUName returns the name used in generated C identifiers, e.g. "A3".
func (k PinKey) CPUName() string {
	return k.PortLetter() + strconv.Itoa(k.Index)
}

// String returns the vendor spelling, e.g. "PA3".
func (k PinKey) String() string {
	return "P" + k.CPUName()
}

// FormatError reports a token that is not a valid pin name.
type FormatError struct {
	Token  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pins: invalid pin name %q: %s", e.Token, e.Reason)
}

// ParsePortPin parses a pin name of the form P<A-K><digits>.
func ParsePortPin(token string) (PinKey, error) {
	if len(token) < 3 {
		return PinKey{}, &FormatError{token, "expecting at least 3 characters"}
	}
	if token[0] != 'P' {
		return PinKey{}, &FormatError{token, "expecting pin name to start with P"}
	}
	if token[1] < 'A' || token[1] > 'K' {
		return PinKey{}, &FormatError{token, "expecting port between A and K"}
	}
	digits := token[2:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return PinKey{}, &FormatError{token, "expecting numeric pin number"}
		}
	}
	index, err := strconv.Atoi(digits)
	if err != nil {
		return PinKey{}, &FormatError{token, "pin number out of range"}
	}
	return PinKey{Port: token[1] - 'A', Index: index}, nil
}
