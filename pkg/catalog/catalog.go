package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Rewrite is a literal substring substitution applied to every AF descriptor
// before it is split into peripheral and signal.
type Rewrite struct {
	From string
	To   string
}

// Config is the mutable description a Catalog is built from.
type Config struct {
	Family        string
	DictStorage   string // storage class of the generated locals dict tables
	DefaultAF     string
	DefaultPrefix string
	Rewrites      []Rewrite
	Peripherals   map[string][]string // peripheral name -> valid signal suffixes
	Conditionals  map[string]string   // peripheral or peripheral+instance -> macro template
}

// Catalog is the immutable set of peripheral signals a firmware family
// supports, together with the formatting knobs that differ between families.
type Catalog struct {
	family        string
	dictStorage   string
	defaultAF     string
	defaultPrefix string
	rewrites      []Rewrite
	supported     map[string]map[string]struct{}
	conditionals  map[string]string
}

// New builds a Catalog from cfg. The config is copied; later changes to it do
// not affect the catalog.
func New(cfg Config) *Catalog {
	c := &Catalog{
		family:        cfg.Family,
		dictStorage:   cfg.DictStorage,
		defaultAF:     cfg.DefaultAF,
		defaultPrefix: cfg.DefaultPrefix,
		rewrites:      append([]Rewrite(nil), cfg.Rewrites...),
		supported:     make(map[string]map[string]struct{}, len(cfg.Peripherals)),
		conditionals:  make(map[string]string, len(cfg.Conditionals)),
	}
	if c.dictStorage == "" {
		c.dictStorage = "static"
	}
	for name, signals := range cfg.Peripherals {
		set := make(map[string]struct{}, len(signals))
		for _, sig := range signals {
			set[sig] = struct{}{}
		}
		c.supported[name] = set
	}
	for key, tmpl := range cfg.Conditionals {
		c.conditionals[key] = tmpl
	}
	return c
}

// Family returns the family name, e.g. "m5531".
func (c *Catalog) Family() string { return c.family }

// DictStorage returns the storage keyword used for the locals dict tables.
func (c *Catalog) DictStorage() string { return c.dictStorage }

// DefaultAF returns the AF CSV used when none is given on the command line.
func (c *Catalog) DefaultAF() string { return c.defaultAF }

// DefaultPrefix returns the prefix file used when none is given.
func (c *Catalog) DefaultPrefix() string { return c.defaultPrefix }

// Rewrite applies every rewrite rule, in order, to descriptor.
func (c *Catalog) Rewrite(descriptor string) string {
	for _, rw := range c.rewrites {
		descriptor = strings.ReplaceAll(descriptor, rw.From, rw.To)
	}
	return descriptor
}

// Supports reports whether signal is a valid suffix of peripheral.
func (c *Catalog) Supports(peripheral, signal string) bool {
	set, ok := c.supported[peripheral]
	if !ok {
		return false
	}
	_, ok = set[signal]
	return ok
}

// Known reports whether the peripheral appears in the catalog at all.
func (c *Catalog) Known(peripheral string) bool {
	_, ok := c.supported[peripheral]
	return ok
}

// Peripherals returns the catalog's peripheral names in sorted order.
func (c *Catalog) Peripherals() []string {
	names := make([]string, 0, len(c.supported))
	for name := range c.supported {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Signals returns the sorted signal suffixes of peripheral.
func (c *Catalog) Signals(peripheral string) []string {
	set := c.supported[peripheral]
	out := make([]string, 0, len(set))
	for sig := range set {
		out = append(out, sig)
	}
	sort.Strings(out)
	return out
}

// ConditionalVars returns the macros guarding an instance token such as
// "UART4". The generic peripheral template is tried first, then an exact
// instance entry; a token without an instance only gets the template. An
// empty result means the entry is unconditional.
func (c *Catalog) ConditionalVars(nameNum string) []string {
	if len(c.conditionals) == 0 {
		return nil
	}
	name, num, ok := SplitInstance(nameNum)
	var vars []string
	if tmpl, found := c.conditionals[name]; found {
		numStr := ""
		if ok {
			numStr = strconv.Itoa(num)
		}
		vars = append(vars, strings.ReplaceAll(tmpl, "{num}", numStr))
	}
	if !ok {
		return vars
	}
	if v, found := c.conditionals[nameNum]; found {
		vars = append(vars, v)
	}
	return vars
}

// SplitInstance splits a trailing run of decimal digits off token. "UART12"
// yields ("UART", 12, true); "EBI" yields ("EBI", 0, false).
func SplitInstance(token string) (name string, instance int, ok bool) {
	i := len(token)
	for i > 0 && token[i-1] >= '0' && token[i-1] <= '9' {
		i--
	}
	if i == len(token) {
		return token, 0, false
	}
	n, err := strconv.Atoi(token[i:])
	if err != nil {
		return token, 0, false
	}
	return token[:i], n, true
}
