package catalog

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed catalog file. It may describe several families.
type File struct {
	Families []*FamilyDecl `@@*`
}

// FamilyDecl describes one firmware family.
// Example: family m5531 { peripheral UART { RXD TXD } }
type FamilyDecl struct {
	Pos lexer.Position

	Name  string  `"family" @Ident LBrace`
	Items []*Item `@@* RBrace`
}

// Item is one statement inside a family block.
type Item struct {
	Dict        *string          `  "dict" @String`
	AF          *string          `| "af" @String`
	Prefix      *string          `| "prefix" @String`
	Rewrite     *RewriteDecl     `| @@`
	Peripheral  *PeripheralDecl  `| @@`
	Conditional *ConditionalDecl `| @@`
}

// RewriteDecl is a descriptor substitution.
// Example: rewrite "ext_" -> "_EXT"
type RewriteDecl struct {
	From string `"rewrite" @String`
	To   string `Arrow @String`
}

// PeripheralDecl lists the signal suffixes of a supported peripheral.
// Example: peripheral UART { RXD nRTS TXD nCTS }
type PeripheralDecl struct {
	Pos lexer.Position

	Name    string   `"peripheral" @Ident`
	Signals []string `LBrace @Ident* RBrace`
}

// ConditionalDecl guards generated entries of a peripheral behind a macro.
// "{num}" in the template is replaced by the instance number.
// Example: conditional UART "MICROPY_HW_UART{num}_TX"
type ConditionalDecl struct {
	Key      string `"conditional" @Ident`
	Template string `@String`
}
