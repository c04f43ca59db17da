package lexer

import "compsim/internal/token"

// resolveIndentation turns raw leading-whitespace runs into INDENT/DEDENT
// markers. Each run is compared with a single running width: wider emits
// Indent, narrower emits Dedent, equal emits nothing. There is no stack of
// levels, so a multi-level dedent yields one Dedent and tab/space mixing is
// not detected.
func resolveIndentation(toks []token.Token) []token.Token {
	out := toks[:0]
	current := 0
	for _, tok := range toks {
		if tok.Kind != token.Indent {
			out = append(out, tok)
			continue
		}
		width := len(tok.Text)
		switch {
		case width > current:
			out = append(out, tok)
		case width < current:
			tok.Kind = token.Dedent
			out = append(out, tok)
		}
		current = width
	}
	return out
}
