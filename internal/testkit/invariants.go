// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"compsim/internal/ast"
	"compsim/internal/source"
)

// CheckSpanInvariants runs the span invariants of a built tree against its file:
// 1) the program span equals the body span
// 2) every expression span lies within the file content
// 3) a binary span covers both operands, and the left operand ends before the right starts
// 4) number and identifier leaves spell exactly their source text
func CheckSpanInvariants(t *ast.Tree, sf *source.File) error {
	if t == nil || t.Builder == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	prog := t.Builder.Program(t.Root)
	if prog == nil {
		return fmt.Errorf("program node not found")
	}
	body := t.Builder.Exprs.Get(prog.Body)
	if body == nil {
		return fmt.Errorf("program has no body")
	}
	if prog.Span != body.Span {
		return fmt.Errorf("program span %v differs from body span %v", prog.Span, body.Span)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkExpr(t.Builder.Exprs, prog.Body, sf.Content, lenContent)
}

func checkExpr(exprs *ast.Exprs, id ast.ExprID, content []byte, lenContent uint32) error {
	e := exprs.Get(id)
	if e == nil {
		return fmt.Errorf("expr %d not found", id)
	}
	if e.Span.End < e.Span.Start || e.Span.End > lenContent {
		return fmt.Errorf("expr %d (%s) span %v outside content of %d bytes", id, e.Kind, e.Span, lenContent)
	}

	switch e.Kind {
	case ast.ExprBinary:
		bin, ok := exprs.Binary(id)
		if !ok {
			return fmt.Errorf("binary expr %d has no payload", id)
		}
		left, right := exprs.Get(bin.Left), exprs.Get(bin.Right)
		if left == nil || right == nil {
			return fmt.Errorf("binary expr %d has a missing operand", id)
		}
		if e.Span.Start > left.Span.Start || e.Span.End < right.Span.End {
			return fmt.Errorf("binary span %v does not cover operands %v and %v", e.Span, left.Span, right.Span)
		}
		if left.Span.End > right.Span.Start {
			return fmt.Errorf("operands overlap: %v then %v", left.Span, right.Span)
		}
		if err := checkExpr(exprs, bin.Left, content, lenContent); err != nil {
			return err
		}
		return checkExpr(exprs, bin.Right, content, lenContent)
	case ast.ExprNumber, ast.ExprIdent:
		leaf, ok := exprs.Leaf(id)
		if !ok {
			return fmt.Errorf("leaf expr %d has no payload", id)
		}
		if got := string(content[e.Span.Start:e.Span.End]); got != leaf.Text {
			return fmt.Errorf("%s leaf text %q but source has %q", e.Kind, leaf.Text, got)
		}
	}
	return nil
}
