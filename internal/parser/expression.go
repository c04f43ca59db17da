package parser

import (
	"compsim/internal/diag"
	"compsim/internal/token"
)

// expression := term (('+'|'-') term)*
func (p *Parser) parseExpression() {
	p.parseTerm()
	for p.atOp("+", "-") {
		p.advance()
		p.parseTerm()
	}
}

// term := factor (('*'|'/') factor)*
func (p *Parser) parseTerm() {
	p.parseFactor()
	for p.atOp("*", "/") {
		p.advance()
		p.parseFactor()
	}
}

// factor := NUMBER | IDENTIFIER | '(' expression ')'
// Неподходящий токен репортится и съедается, чтобы разбор всегда продвигался.
func (p *Parser) parseFactor() {
	switch {
	case p.at(token.Number), p.at(token.Identifier):
		p.advance()
	case p.atPunct("("):
		p.advance()
		p.parseExpression()
		p.expectPunct(")", diag.SynUnclosedParen, "Expected ')' after expression")
	default:
		p.errAt(diag.SynExpectExpression, "Expected number, identifier, or '('", "number, identifier, or (")
		p.advance()
	}
}
