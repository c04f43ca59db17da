package lexer

import (
	"compsim/internal/diag"
	"compsim/internal/token"
)

// scanIdent сканирует идентификатор и классифицирует его по профилю языка:
// ключевое слово → Keyword, иначе встроенное имя → Builtin, иначе Identifier.
// Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for lx.isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Identifier, start)
	tok.Kind = classify(lx, tok.Text)
	return tok
}

func classify(lx *Lexer, text string) token.Kind {
	switch {
	case lx.profile.IsKeyword(text):
		return token.Keyword
	case lx.profile.IsBuiltin(text):
		return token.Builtin
	default:
		return token.Identifier
	}
}

// scanDirective сканирует '#name' в начале строки (только пробелы перед ним).
func (lx *Lexer) scanDirective() (token.Token, error) {
	start := lx.cursor.Mark()
	if !lx.cursor.AtLineStart() {
		lx.cursor.Bump()
		return token.Token{}, lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "directive must start a line, got")
	}
	lx.cursor.Bump() // '#'
	if !isLetter(lx.cursor.Peek()) {
		return token.Token{}, lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "expected directive name after")
	}
	for isLetter(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Directive, start), nil
}

// scanAnnotation сканирует '@' [A-Za-z] [A-Za-z0-9]*.
func (lx *Lexer) scanAnnotation() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	if !isLetter(lx.cursor.Peek()) {
		return token.Token{}, lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "expected annotation name after")
	}
	for b := lx.cursor.Peek(); isLetter(b) || isDec(b); b = lx.cursor.Peek() {
		lx.cursor.Bump()
	}
	return lx.emit(token.Annotation, start), nil
}
