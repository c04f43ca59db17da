package ast

import (
	"compsim/internal/lang"
	"compsim/internal/source"
	"compsim/internal/token"
)

// Build re-derives the expression tree from tokens, starting at the first
// token and independent of any parser run. Only the expression grammar is
// represented: function constructs show up as Error leaves or are ignored.
// Build never fails; a token that cannot start a factor becomes an Error leaf
// and is consumed, so every call terminates. The language does not affect the
// tree shape.
func Build(tokens []token.Token, _ lang.Language) *Tree {
	tb := treeBuilder{
		toks: tokens,
		b:    NewBuilder(Hints{Exprs: uint(len(tokens))}), // #nosec G115 -- len is non-negative
	}
	tb.skipLayout()
	body := tb.expression()
	root := tb.b.NewProgram(tb.b.Exprs.Get(body).Span, body)
	return &Tree{Builder: tb.b, Root: root}
}

type treeBuilder struct {
	toks []token.Token
	pos  int
	b    *Builder
}

func (tb *treeBuilder) atEnd() bool { return tb.pos >= len(tb.toks) }

func (tb *treeBuilder) peek() token.Token {
	if tb.atEnd() {
		return token.Token{}
	}
	return tb.toks[tb.pos]
}

func (tb *treeBuilder) advance() token.Token {
	tok := tb.peek()
	if !tb.atEnd() {
		tb.pos++
	}
	return tok
}

func (tb *treeBuilder) skipLayout() {
	for !tb.atEnd() && tb.toks[tb.pos].Kind.IsLayout() {
		tb.pos++
	}
}

// binaryOp reports the operator at the cursor when it is one of ops.
func (tb *treeBuilder) binaryOp(ops ...ExprBinaryOp) (ExprBinaryOp, bool) {
	tok := tb.peek()
	if tok.Kind != token.Operator {
		return 0, false
	}
	op, ok := binaryOpOf(tok.Text)
	if !ok {
		return 0, false
	}
	for _, want := range ops {
		if op == want {
			return op, true
		}
	}
	return 0, false
}

// expression := term (('+'|'-') term)*
func (tb *treeBuilder) expression() ExprID {
	left := tb.term()
	for {
		op, ok := tb.binaryOp(ExprBinaryAdd, ExprBinarySub)
		if !ok {
			return left
		}
		tb.advance()
		left = tb.b.Exprs.NewBinary(op, left, tb.term())
	}
}

// term := factor (('*'|'/') factor)*
func (tb *treeBuilder) term() ExprID {
	left := tb.factor()
	for {
		op, ok := tb.binaryOp(ExprBinaryMul, ExprBinaryDiv)
		if !ok {
			return left
		}
		tb.advance()
		left = tb.b.Exprs.NewBinary(op, left, tb.factor())
	}
}

// factor := NUMBER | IDENTIFIER | '(' expression ')'
// Пропущенная ')' допускается.
func (tb *treeBuilder) factor() ExprID {
	tok := tb.peek()
	switch {
	case tb.atEnd():
		return tb.b.Exprs.NewError(tb.endSpan(), "")
	case tok.Kind == token.Number:
		tb.advance()
		return tb.b.Exprs.NewNumber(tok.Span, tok.Text)
	case tok.Kind == token.Identifier:
		tb.advance()
		return tb.b.Exprs.NewIdent(tok.Span, tok.Text)
	case tok.IsPunct("("):
		tb.advance()
		inner := tb.expression()
		if tb.peek().IsPunct(")") {
			tb.advance()
		}
		return inner
	default:
		tb.advance()
		return tb.b.Exprs.NewError(tok.Span, tok.Text)
	}
}

func (tb *treeBuilder) endSpan() source.Span {
	if len(tb.toks) == 0 {
		return source.Span{}
	}
	return tb.toks[len(tb.toks)-1].Span.ZeroideToEnd()
}
