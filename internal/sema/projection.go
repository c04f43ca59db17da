package sema

import (
	"compsim/internal/diag"
	"compsim/internal/lang"
	"compsim/internal/source"
	"compsim/internal/tree"
)

// AnalyzeTree applies the same checks to a rendering projection, e.g. one
// loaded from a stored record. Projections carry no spans, so diagnostics
// have no position. root may be a whole Program or any subtree.
func AnalyzeTree(root *tree.Node, language lang.Language, opts Options) Result {
	a := analyzer{
		symbols:  NewSymbolTable(opts.Declared...),
		reporter: opts.Reporter,
		language: language,
	}
	a.walkNode(root)
	return a.result()
}

func (a *analyzer) walkNode(n *tree.Node) {
	if n == nil {
		return
	}
	switch n.Name {
	case tree.NameIdent:
		a.checkIdent(n.Attr("value"), source.Span{})
	case tree.NameBinary:
		if n.Attr("operator") == "/" && len(n.Children) == 2 {
			right := n.Children[1]
			if right != nil && right.Name == tree.NameNumber && isZeroText(right.Attr("value")) {
				a.addWarning(diag.SemaDivisionByZero, source.Span{}, "Division by zero")
			}
		}
		for _, c := range n.Children {
			a.walkNode(c)
		}
	default:
		// Program и прочие узлы без собственных проверок
		for _, c := range n.Children {
			a.walkNode(c)
		}
	}
}
