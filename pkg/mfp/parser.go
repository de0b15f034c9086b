package mfp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser recognizes marker comments and setting defines.
type Parser struct {
	markers  *participle.Parser[Marker]
	settings *participle.Parser[Setting]
}

// NewParser creates a new header line parser
func NewParser() (*Parser, error) {
	opts := []participle.Option{
		participle.Lexer(HeaderLexer),
		participle.Elide("DocComment", "Whitespace"),
	}
	markers, err := participle.Build[Marker](opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build marker parser: %w", err)
	}
	settings, err := participle.Build[Setting](opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build setting parser: %w", err)
	}
	return &Parser{markers: markers, settings: settings}, nil
}

// ParseMarker parses a pin marker comment. Lines carrying anything after the
// closing comment are not markers.
func (p *Parser) ParseMarker(line string) (*Marker, error) {
	return p.markers.ParseString("", line)
}

// ParseSetting parses the leading #define of line. Trailing tokens are
// ignored.
func (p *Parser) ParseSetting(line string) (*Setting, error) {
	return p.settings.ParseString("", line, participle.AllowTrailing(true))
}

// Port returns the port letter of the marker, e.g. 'A' for PA.0.
func (m *Marker) Port() byte {
	return m.Pin[1]
}

// Index returns the pin number of the marker.
func (m *Marker) Index() (int, error) {
	_, num, _ := strings.Cut(m.Pin, ".")
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("mfp: bad pin number in %s: %w", m.Pin, err)
	}
	return n, nil
}

// FieldValue returns the MFP value of a setting, e.g. 7 for (0x7UL<<...).
func (s *Setting) FieldValue() (int, bool) {
	if s.Value == nil {
		return 0, false
	}
	lit := strings.TrimRight(s.Value.Value, "uUlL")
	v, err := strconv.ParseUint(lit, 0, 16)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
