package lexer

import (
	"compsim/internal/diag"
	"compsim/internal/token"
)

// scanString сканирует строковые и символьные литералы:
//   - """...""" / ”'...”' для языков с тройными кавычками (могут занимать несколько строк);
//   - `...` для языков с шаблонными строками (могут занимать несколько строк);
//   - "..." и '...' — до конца строки, escape "\x" съедает следующий байт.
//
// Незакрытый литерал — LexError.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	q := lx.cursor.Peek()
	sg := lx.profile.String

	if sg.TripleQuoted && (q == '"' || q == '\'') {
		if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == q && b1 == q && b2 == q {
			return lx.scanTriple(start, q)
		}
	}

	kind := token.String
	code := diag.LexUnterminatedString
	multiline := false
	switch q {
	case '\'':
		if sg.CharLiteral {
			kind, code = token.Char, diag.LexUnterminatedChar
		}
	case '`':
		multiline = true
	}

	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == q:
			lx.cursor.Bump()
			return lx.emit(kind, start), nil
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() || (lx.cursor.Peek() == '\n' && !multiline) {
				return token.Token{}, lx.errLex(code, lx.cursor.SpanFrom(start), "unterminated literal starting with")
			}
			lx.cursor.Bump()
		case b == '\n' && !multiline:
			return token.Token{}, lx.errLex(code, lx.cursor.SpanFrom(start), "unterminated literal starting with")
		default:
			lx.cursor.Bump()
		}
	}
	// EOF без закрывающей кавычки
	return token.Token{}, lx.errLex(code, lx.cursor.SpanFrom(start), "unterminated literal starting with")
}

func (lx *Lexer) scanTriple(start Mark, q byte) (token.Token, error) {
	lx.cursor.Advance(3)
	for !lx.cursor.EOF() {
		if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == q && b1 == q && b2 == q {
			lx.cursor.Advance(3)
			return lx.emit(token.String, start), nil
		}
		lx.cursor.Bump()
	}
	return token.Token{}, lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated triple-quoted string starting with")
}
