package pins

import (
	"strconv"
	"strings"
)

// parseADC reads an ADC metadata cell of the form ADC<units>_IN<channel>,
// e.g. ADC12_IN4 is channel 4 on ADC1 and ADC2. Anything else is ignored.
func (p *Pin) parseADC(cell string) {
	if !strings.HasPrefix(cell, "ADC") {
		return
	}
	units, channel, ok := strings.Cut(cell, "_IN")
	if !ok {
		return
	}
	ch, err := strconv.Atoi(strings.TrimPrefix(channel, "P"))
	if err != nil {
		return
	}
	var mask uint8
	for _, c := range units[len("ADC"):] {
		if c < '1' || c > '8' {
			return
		}
		mask |= 1 << (c - '1')
	}
	p.ADCMask |= mask
	p.ADCChannel = ch
}

// ADCNumString renders the ADC mask as a C expression, e.g.
// "PIN_ADC1 | PIN_ADC2", or "0" when the pin has no ADC.
func (p *Pin) ADCNumString() string {
	var parts []string
	for n := 1; n <= 3; n++ {
		if p.ADCMask&(1<<(n-1)) != 0 {
			parts = append(parts, "PIN_ADC"+strconv.Itoa(n))
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " | ")
}
