package token

import (
	"compsim/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Span source.Span
	Pos  source.LineCol
}

// Line returns the 1-based line of the first byte.
func (t Token) Line() uint32 { return t.Pos.Line }

// Column returns the 1-based rune column of the first byte.
func (t Token) Column() uint32 { return t.Pos.Col }

// Is reports whether the token has the given kind and text.
func (t Token) Is(k Kind, text string) bool {
	return t.Kind == k && t.Text == text
}

// IsOp reports whether the token is the operator text.
func (t Token) IsOp(text string) bool { return t.Is(Operator, text) }

// IsPunct reports whether the token is the punctuation text.
func (t Token) IsPunct(text string) bool { return t.Is(Punctuation, text) }

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier }

// IsLiteral reports whether the token is a number, string or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, Char:
		return true
	default:
		return false
	}
}
