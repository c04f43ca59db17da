package parser

import (
	"strings"

	"compsim/internal/diag"
	"compsim/internal/token"
)

// found renders the current token for a diagnostic: its text, the kind
// name for layout tokens, or "end of input".
func (p *Parser) found() string {
	if p.atEnd() {
		return diag.EndOfInput
	}
	tok := p.peek()
	if tok.Kind.IsLayout() {
		return strings.ToUpper(tok.Kind.String())
	}
	return tok.Text
}

// errAt репортует ошибку на текущем токене (или в конце ввода).
func (p *Parser) errAt(code diag.Code, msg, expected string) {
	p.errors++
	if p.atEnd() {
		sp, pos := p.endPosition()
		diag.ReportError(p.rep, code, sp, msg).At(pos).Expected(expected, diag.EndOfInput).Emit()
		return
	}
	tok := p.peek()
	diag.ReportError(p.rep, code, tok.Span, msg).At(tok.Pos).Expected(expected, p.found()).Emit()
}

// expectPunct — ожидаем конкретную пунктуацию. Если нет — репортим и возвращаем false.
func (p *Parser) expectPunct(text string, code diag.Code, msg string) bool {
	if p.atPunct(text) {
		p.advance()
		return true
	}
	p.errAt(code, msg, text)
	return false
}

// expectIdent — ожидаем простой идентификатор (не ключевое слово и не встроенное имя).
func (p *Parser) expectIdent(code diag.Code, msg string) bool {
	if p.at(token.Identifier) {
		p.advance()
		return true
	}
	p.errAt(code, msg, "identifier")
	return false
}
