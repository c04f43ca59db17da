package token_test

import (
	"testing"

	"compsim/internal/source"
	"compsim/internal/token"
)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Text: text, Span: source.Span{Start: 0, End: uint32(len(text))}}
}

func TestKindStringRoundTrip(t *testing.T) {
	for k := token.Invalid; k <= token.Annotation; k++ {
		name := k.String()
		back, ok := token.ParseKind(name)
		if !ok || back != k {
			t.Errorf("ParseKind(%q) = %v,%v want %v", name, back, ok, k)
		}
	}
	if token.Kind(200).String() != "invalid" {
		t.Error("out of range kind must print as invalid")
	}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.Number, token.String, token.Char} {
		if !tok(k, "x").IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Identifier, token.Keyword, token.Operator, token.Punctuation} {
		if tok(k, "x").IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestMatchers(t *testing.T) {
	plus := tok(token.Operator, "+")
	if !plus.IsOp("+") || plus.IsOp("-") || plus.IsPunct("+") {
		t.Error("operator matcher mismatch")
	}
	lp := tok(token.Punctuation, "(")
	if !lp.IsPunct("(") || lp.IsOp("(") {
		t.Error("punctuation matcher mismatch")
	}
	for _, k := range []token.Kind{token.Newline, token.Indent, token.Dedent} {
		if !k.IsLayout() {
			t.Errorf("%v must be layout", k)
		}
	}
	if token.Identifier.IsLayout() {
		t.Error("identifier is not layout")
	}
}
