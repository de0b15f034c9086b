package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser reads catalog files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new catalog parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(CatalogLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a catalog file from a reader
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a catalog file from a string
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a catalog file from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Catalogs converts every family block into a Catalog, in file order.
func (f *File) Catalogs() ([]*Catalog, error) {
	out := make([]*Catalog, 0, len(f.Families))
	seen := make(map[string]bool)
	for _, fam := range f.Families {
		if seen[fam.Name] {
			return nil, fmt.Errorf("catalog: %s: family %q declared twice", fam.Pos, fam.Name)
		}
		seen[fam.Name] = true

		cfg, err := fam.config()
		if err != nil {
			return nil, err
		}
		out = append(out, New(cfg))
	}
	return out, nil
}

func (fam *FamilyDecl) config() (Config, error) {
	cfg := Config{
		Family:       fam.Name,
		Peripherals:  make(map[string][]string),
		Conditionals: make(map[string]string),
	}
	for _, item := range fam.Items {
		switch {
		case item.Dict != nil:
			cfg.DictStorage = *item.Dict
		case item.AF != nil:
			cfg.DefaultAF = *item.AF
		case item.Prefix != nil:
			cfg.DefaultPrefix = *item.Prefix
		case item.Rewrite != nil:
			if item.Rewrite.From == "" {
				return Config{}, fmt.Errorf("catalog: family %s: empty rewrite pattern", fam.Name)
			}
			cfg.Rewrites = append(cfg.Rewrites, Rewrite{From: item.Rewrite.From, To: item.Rewrite.To})
		case item.Peripheral != nil:
			p := item.Peripheral
			if _, dup := cfg.Peripherals[p.Name]; dup {
				return Config{}, fmt.Errorf("catalog: %s: peripheral %s declared twice", p.Pos, p.Name)
			}
			cfg.Peripherals[p.Name] = p.Signals
		case item.Conditional != nil:
			cfg.Conditionals[item.Conditional.Key] = item.Conditional.Template
		}
	}
	return cfg, nil
}

// LoadFile parses path and returns the catalog for family. An empty family
// selects the only family in a single-family file.
func LoadFile(path, family string) (*Catalog, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	cats, err := file.Catalogs()
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	if family == "" {
		if len(cats) != 1 {
			return nil, fmt.Errorf("catalog: %s: %d families, name one", path, len(cats))
		}
		return cats[0], nil
	}
	for _, c := range cats {
		if c.Family() == family {
			return c, nil
		}
	}
	return nil, fmt.Errorf("catalog: %s: no family %q", path, family)
}
