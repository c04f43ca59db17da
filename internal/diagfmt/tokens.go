package diagfmt

import (
	"fmt"
	"io"

	"compsim/internal/token"
)

// TokenOutput is the public token record.
type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// MakeTokensJSON converts tokens; the result is never nil.
func MakeTokensJSON(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Line:   tok.Line(),
			Column: tok.Column(),
		})
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-12s %-16q at %d:%d\n",
			i+1, tok.Kind.String(), tok.Text, tok.Line(), tok.Column()); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, indent bool) error {
	return EncodeJSON(w, MakeTokensJSON(tokens), indent)
}
