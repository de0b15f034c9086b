package mfp

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// HeaderLexer tokenizes single lines of a vendor sys.h.
var HeaderLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Doxygen member comments (/*!< ... */) trail every setting define.
	{Name: "DocComment", Pattern: `/\*!<.*?\*/`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	{Name: "Define", Pattern: `#define\b`},
	{Name: "CommentOpen", Pattern: `/\*`},
	{Name: "CommentClose", Pattern: `\*/`},

	// PA.0, PJ.10
	{Name: "PinRef", Pattern: `P[A-Z]\.[0-9]+`},
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F]+[uUlL]*|[0-9]+[uUlL]*`},
	{Name: "Shift", Pattern: `<<`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},

	// Anything else, so arbitrary C never fails to lex.
	{Name: "Other", Pattern: `.`},
})
