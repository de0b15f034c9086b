package catalog

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CatalogLexer tokenizes catalog files.
var CatalogLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Shell style comments
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},

	// Keywords (family, peripheral, ...) are matched as identifiers by value.
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})
