package ast

import (
	"compsim/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprNumber is a numeric literal leaf.
	ExprNumber ExprKind = iota + 1
	// ExprIdent is an identifier leaf.
	ExprIdent
	// ExprBinary is a left-associative binary operation.
	ExprBinary
	// ExprError stands in for a token that cannot start a factor.
	ExprError
)

func (k ExprKind) String() string {
	switch k {
	case ExprNumber:
		return "Number"
	case ExprIdent:
		return "Ident"
	case ExprBinary:
		return "Binary"
	case ExprError:
		return "Error"
	default:
		return "Invalid"
	}
}

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	// ExprBinarySub represents the subtraction operator (-).
	ExprBinarySub
	// ExprBinaryMul represents the multiplication operator (*).
	ExprBinaryMul
	// ExprBinaryDiv represents the division operator (/).
	ExprBinaryDiv
)

func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	default:
		return "?"
	}
}

// binaryOpOf maps operator text to its op; ok is false for anything else.
func binaryOpOf(text string) (ExprBinaryOp, bool) {
	switch text {
	case "+":
		return ExprBinaryAdd, true
	case "-":
		return ExprBinarySub, true
	case "*":
		return ExprBinaryMul, true
	case "/":
		return ExprBinaryDiv, true
	default:
		return 0, false
	}
}

// ExprLeafData is the payload of Number, Ident and Error leaves: the raw
// token text (empty for an Error produced at end of input).
type ExprLeafData struct {
	Text string
}

// ExprBinaryData is the payload of a Binary expression.
type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// Program is the root: exactly one body expression.
type Program struct {
	Span source.Span
	Body ExprID
}
