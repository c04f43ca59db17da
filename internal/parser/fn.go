package parser

import (
	"compsim/internal/diag"
	"compsim/internal/token"
)

// function := introducer IDENTIFIER '(' (IDENTIFIER (',' IDENTIFIER)*)? ')' [':'] [body]
func (p *Parser) parseFunction() {
	p.advance() // introducer

	p.expectIdent(diag.SynExpectFunctionName, "Expected function name (identifier)")
	p.expectPunct("(", diag.SynExpectLParen, "Expected '(' after function name")
	p.parseParams()
	p.expectPunct(")", diag.SynExpectRParen, "Expected ')' after parameters")

	if p.profile.ColonAfterHeader {
		p.expectPunct(":", diag.SynExpectColon, "Expected ':' after function declaration")
	}

	switch {
	case p.profile.BraceBody && p.atPunct("{"):
		p.parseBraceBody()
	case p.profile.UsesIndentation:
		p.parseSuite()
	}
}

// parseParams разбирает список параметров до ')'. Ошибка прерывает только этот цикл.
func (p *Parser) parseParams() {
	for !p.atEnd() && !p.atPunct(")") {
		if !p.expectIdent(diag.SynExpectParamName, "Expected parameter name") {
			return
		}
		switch {
		case p.atPunct(","):
			p.advance()
		case !p.atEnd() && !p.atPunct(")"):
			p.errAt(diag.SynExpectParamSeparator, "Expected ',' or ')' after parameter", ", or )")
			return
		}
	}
}

// parseBraceBody — поверхностный разбор тела: токены пропускаются до парной '}',
// кроме return, чьё выражение разбирается.
func (p *Parser) parseBraceBody() {
	p.advance() // '{'
	depth := 0
	for !p.atEnd() {
		switch {
		case p.atPunct("}"):
			if depth == 0 {
				p.advance()
				return
			}
			depth--
			p.advance()
		case p.atPunct("{"):
			depth++
			p.advance()
		case p.atReturn():
			p.parseReturn()
		default:
			p.advance()
		}
	}
	p.errAt(diag.SynExpectRBrace, "Expected '}' at end of function body", "}")
}

// parseSuite разбирает тело после ':' для языка с отступами:
// либо простую строку до NEWLINE, либо NEWLINE INDENT ... DEDENT|EOF.
func (p *Parser) parseSuite() {
	if !p.at(token.Newline) {
		for !p.atEnd() && !p.at(token.Newline) {
			p.bodyStep()
		}
		return
	}
	for p.at(token.Newline) {
		p.advance()
	}
	if !p.at(token.Indent) {
		return
	}
	p.advance()
	depth := 0
	for !p.atEnd() {
		switch {
		case p.at(token.Dedent):
			p.advance()
			if depth == 0 {
				return
			}
			depth--
		case p.at(token.Indent):
			depth++
			p.advance()
		default:
			p.bodyStep()
		}
	}
}

func (p *Parser) bodyStep() {
	if p.atReturn() {
		p.parseReturn()
		return
	}
	p.advance()
}

func (p *Parser) atReturn() bool {
	return p.at(token.Keyword) && p.peek().Text == "return"
}

// return expression [';']
func (p *Parser) parseReturn() {
	p.advance() // return
	p.parseExpression()
	if p.atPunct(";") {
		p.advance()
	}
}
