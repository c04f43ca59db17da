package ast

import (
	"compsim/internal/source"
)

type Hints struct{ Exprs uint }

type Builder struct {
	Programs *Arena[Program]
	Exprs    *Exprs
}

func NewBuilder(hints Hints) *Builder {
	return &Builder{
		Programs: NewArena[Program](1),
		Exprs:    NewExprs(hints.Exprs),
	}
}

func (b *Builder) NewProgram(sp source.Span, body ExprID) ProgramID {
	return ProgramID(b.Programs.Allocate(Program{Span: sp, Body: body}))
}

func (b *Builder) Program(id ProgramID) *Program {
	return b.Programs.Get(uint32(id))
}

// Tree is the typed expression tree for one token sequence.
type Tree struct {
	Builder *Builder
	Root    ProgramID
}

// Body returns the single top-level expression.
func (t *Tree) Body() ExprID {
	if t == nil || t.Builder == nil {
		return NoExprID
	}
	if p := t.Builder.Program(t.Root); p != nil {
		return p.Body
	}
	return NoExprID
}
