package catalog

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitInstance(t *testing.T) {
	tests := []struct {
		in       string
		name     string
		instance int
		ok       bool
	}{
		{"UART0", "UART", 0, true},
		{"UART12", "UART", 12, true},
		{"EBI", "EBI", 0, false},
		{"I2C1", "I2C", 1, true},
		{"", "", 0, false},
		{"42", "", 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, inst, ok := SplitInstance(tt.in)
			if name != tt.name || inst != tt.instance || ok != tt.ok {
				t.Errorf("SplitInstance(%q) = (%q, %d, %v), want (%q, %d, %v)",
					tt.in, name, inst, ok, tt.name, tt.instance, tt.ok)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	c := New(Config{
		Family:      "test",
		Peripherals: map[string][]string{"UART": {"TXD", "RXD"}},
	})

	if !c.Supports("UART", "TXD") {
		t.Error("expected UART TXD to be supported")
	}
	if c.Supports("UART", "CLK") {
		t.Error("UART CLK should not be supported")
	}
	if c.Supports("FOO", "BAR") {
		t.Error("unknown peripheral should not be supported")
	}
	if c.DictStorage() != "static" {
		t.Errorf("expected default dict storage 'static', got %q", c.DictStorage())
	}
	if !c.Known("UART") || c.Known("FOO") {
		t.Error("Known disagrees with the peripheral table")
	}
	if got := c.Peripherals(); !reflect.DeepEqual(got, []string{"UART"}) {
		t.Errorf("Peripherals() = %v", got)
	}
	if got := c.Signals("UART"); !reflect.DeepEqual(got, []string{"RXD", "TXD"}) {
		t.Errorf("Signals(UART) = %v, want sorted [RXD TXD]", got)
	}
	if got := c.Signals("FOO"); len(got) != 0 {
		t.Errorf("Signals(FOO) = %v, want empty", got)
	}
}

func TestConfigIsCopied(t *testing.T) {
	cfg := Config{Peripherals: map[string][]string{"UART": {"TXD"}}}
	c := New(cfg)
	cfg.Peripherals["SPI"] = []string{"CLK"}

	if c.Known("SPI") {
		t.Error("catalog changed after its config was modified")
	}
}

func TestRewrite(t *testing.T) {
	c := New(Config{Rewrites: []Rewrite{ExtRewrite}})

	got := c.Rewrite("I2S2ext_SD")
	if got != "I2S2_EXTSD" {
		t.Errorf("expected I2S2_EXTSD, got %s", got)
	}
	if got := c.Rewrite("UART0_TXD"); got != "UART0_TXD" {
		t.Errorf("descriptor without pattern changed: %s", got)
	}
}

func TestConditionalVars(t *testing.T) {
	c := New(Config{
		Conditionals: map[string]string{
			"UART":  "MICROPY_HW_UART{num}_TX",
			"UART4": "MICROPY_HW_UART4_EXTRA",
		},
	})

	got := c.ConditionalVars("UART4")
	want := []string{"MICROPY_HW_UART4_TX", "MICROPY_HW_UART4_EXTRA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConditionalVars(UART4) = %v, want %v", got, want)
	}

	if got := c.ConditionalVars("SPI0"); len(got) != 0 {
		t.Errorf("expected no vars for SPI0, got %v", got)
	}

	empty := New(Config{})
	if got := empty.ConditionalVars("UART0"); got != nil {
		t.Errorf("empty table should yield nil, got %v", got)
	}
}

func TestConditionalVarsWithoutInstance(t *testing.T) {
	c := New(Config{
		Conditionals: map[string]string{"EBI": "MICROPY_HW_EBI{num}"},
	})

	tests := []struct {
		token string
		want  []string
	}{
		{"EBI0", []string{"MICROPY_HW_EBI0"}},
		{"EBI", []string{"MICROPY_HW_EBI"}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := c.ConditionalVars(tt.token)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ConditionalVars(%s) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestBuiltinFamilies(t *testing.T) {
	if got := Families(); !reflect.DeepEqual(got, []string{"m5531", "n9h26"}) {
		t.Fatalf("unexpected families %v", got)
	}

	m, err := Lookup("m5531")
	if err != nil {
		t.Fatalf("Lookup(m5531): %v", err)
	}
	if !m.Supports("EBI", "nCS2") || !m.Supports("EADC", "CH23") || !m.Supports("EPWM", "SYNC_OUT") {
		t.Error("m5531 catalog is missing expected signals")
	}
	if m.DefaultAF() != "m26x_af.csv" || m.DictStorage() != "static" {
		t.Errorf("unexpected m5531 defaults: %q %q", m.DefaultAF(), m.DictStorage())
	}

	n, err := Lookup("n9h26")
	if err != nil {
		t.Fatalf("Lookup(n9h26): %v", err)
	}
	if !n.Supports("ADC", "AIN3") || n.Supports("UART", "nRTS") {
		t.Error("n9h26 catalog has wrong UART/ADC signals")
	}
	if n.DictStorage() != "STATIC" {
		t.Errorf("expected STATIC, got %q", n.DictStorage())
	}

	if _, err := Lookup("m99"); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestParseCatalogFile(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseFile(filepath.Join("testdata", "m5531_min.cat"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(file.Families) != 2 {
		t.Fatalf("expected 2 families, got %d", len(file.Families))
	}

	cats, err := file.Catalogs()
	if err != nil {
		t.Fatalf("Catalogs: %v", err)
	}

	m := cats[0]
	if m.Family() != "m5531" {
		t.Errorf("expected family m5531, got %s", m.Family())
	}
	if m.DefaultPrefix() != "m26x_prefix.c" {
		t.Errorf("unexpected prefix %q", m.DefaultPrefix())
	}
	if !m.Supports("EBI", "nWR") || !m.Supports("UART", "nCTS") {
		t.Error("parsed catalog lost signals")
	}
	if got := m.Rewrite("I2S0ext_SD"); got != "I2S0_EXTSD" {
		t.Errorf("rewrite not applied: %s", got)
	}
	if !reflect.DeepEqual(m.Peripherals(), []string{"EBI", "I2C", "UART"}) {
		t.Errorf("unexpected peripherals %v", m.Peripherals())
	}

	custom := cats[1]
	if custom.DictStorage() != "STATIC" {
		t.Errorf("expected STATIC, got %q", custom.DictStorage())
	}
	want := []string{"MICROPY_HW_UART2_TX"}
	if got := custom.ConditionalVars("UART2"); !reflect.DeepEqual(got, want) {
		t.Errorf("ConditionalVars = %v, want %v", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join("testdata", "m5531_min.cat")

	c, err := LoadFile(path, "custom")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Family() != "custom" {
		t.Errorf("expected custom, got %s", c.Family())
	}

	if _, err := LoadFile(path, ""); err == nil {
		t.Error("expected error selecting from a multi-family file without a name")
	}
	if _, err := LoadFile(path, "nope"); err == nil {
		t.Error("expected error for missing family")
	}
	if _, err := LoadFile(filepath.Join("testdata", "missing.cat"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseErrors(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{"unterminated block", `family x { peripheral UART { TXD }`},
		{"missing arrow", `family x { rewrite "a" "b" }`},
		{"unknown statement", `family x { colour "red" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.ParseString(tt.input); err == nil {
				t.Errorf("expected parse error for %q", tt.input)
			}
		})
	}

	file, err := parser.ParseString(`family x { peripheral A { B } peripheral A { C } }`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := file.Catalogs(); err == nil {
		t.Error("expected duplicate peripheral error")
	}
}
