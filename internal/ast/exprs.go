package ast

import (
	"compsim/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Leaves   *Arena[ExprLeafData]
	Binaries *Arena[ExprBinaryData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint as the initial capacity.
// If capHint is 0, a default capacity of 1<<6 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Leaves:   NewArena[ExprLeafData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint / 2),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (e *Exprs) newLeaf(kind ExprKind, span source.Span, text string) ExprID {
	payload := e.Leaves.Allocate(ExprLeafData{Text: text})
	return e.new(kind, span, PayloadID(payload))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewNumber creates a numeric literal leaf.
func (e *Exprs) NewNumber(span source.Span, text string) ExprID {
	return e.newLeaf(ExprNumber, span, text)
}

// NewIdent creates an identifier leaf.
func (e *Exprs) NewIdent(span source.Span, name string) ExprID {
	return e.newLeaf(ExprIdent, span, name)
}

// NewError creates an error leaf for the skipped token text.
func (e *Exprs) NewError(span source.Span, skipped string) ExprID {
	return e.newLeaf(ExprError, span, skipped)
}

// Leaf returns the payload of a Number, Ident or Error expression.
func (e *Exprs) Leaf(id ExprID) (*ExprLeafData, bool) {
	expr := e.Get(id)
	if expr == nil {
		return nil, false
	}
	switch expr.Kind {
	case ExprNumber, ExprIdent, ExprError:
		return e.Leaves.Get(uint32(expr.Payload)), true
	default:
		return nil, false
	}
}

// NewBinary creates a new binary expression spanning both operands.
func (e *Exprs) NewBinary(op ExprBinaryOp, left, right ExprID) ExprID {
	span := e.Get(left).Span.Cover(e.Get(right).Span)
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}
