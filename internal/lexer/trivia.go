package lexer

import (
	"compsim/internal/diag"
	"compsim/internal/token"
)

// skipTrivia пропускает пробелы и комментарии перед значимым токеном.
// Для языков с отступами '\n' не пропускается: он становится токеном Newline.
func (lx *Lexer) skipTrivia() error {
	keepNewlines := lx.profile.UsesIndentation
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		switch {
		case isBlank(b):
			lx.cursor.Bump()
			continue
		case b == '\n' && !keepNewlines:
			lx.cursor.Bump()
			continue
		case b == '#' && lx.profile.HashComment:
			lx.skipLine()
			continue
		case b == '/':
			ok, err := lx.skipSlashComment()
			if err != nil {
				return err
			}
			if ok {
				continue
			}
		}

		// нет больше trivia
		return nil
	}
	return nil
}

// skipLine consumes up to, but not including, the next '\n'.
func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// //... и /* ... */ (без вложенности)
func (lx *Lexer) skipSlashComment() (bool, error) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false, nil
	}
	switch {
	case b1 == '/' && lx.profile.LineComment == "//":
		lx.skipLine()
		return true, nil

	case b1 == '*' && lx.profile.BlockComment:
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return true, nil
			}
			lx.cursor.Bump()
		}
		return false, lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment starting with")
	}
	return false, nil
}

// scanIndentRun measures the leading whitespace of the current line.
// Blank and comment-only lines yield no run. The returned token has kind
// Indent and the raw whitespace as text; it may be empty.
func (lx *Lexer) scanIndentRun() (token.Token, bool) {
	start := lx.cursor.Mark()
	for b := lx.cursor.Peek(); b == ' ' || b == '\t'; b = lx.cursor.Peek() {
		lx.cursor.Bump()
	}
	run := lx.emit(token.Indent, start)

	probe := lx.cursor.Mark()
	for isBlank(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	blank := lx.cursor.EOF() || lx.cursor.Peek() == '\n' ||
		(lx.cursor.Peek() == '#' && lx.profile.HashComment)
	lx.cursor.Reset(probe)
	if blank {
		return token.Token{}, false
	}
	return run, true
}
