package mfp

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Marker opens the settings block of one pin.
// Example: /* PA.0 MFP */
type Marker struct {
	Pos lexer.Position

	Pin string `CommentOpen @PinRef "MFP" CommentClose`
}

// Setting is a multi-function pin define.
// Example: #define SYS_GPA_MFP0_PA0MFP_UART0_RXD (0x7UL<<SYS_GPA_MFP0_PA0MFP_Pos)
type Setting struct {
	Pos lexer.Position

	Name  string       `Define @Ident`
	Value *ShiftedExpr `@@?`
}

// ShiftedExpr is the (value<<field) expression of a setting.
type ShiftedExpr struct {
	Value string `LParen @Number Shift`
	Field string `@Ident RParen`
}
