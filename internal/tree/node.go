package tree

import (
	"compsim/internal/ast"
)

// Имена узлов проекции.
const (
	NameProgram = "Program"
	NameBinary  = "BinaryExpression"
	NameNumber  = "NumericLiteral"
	NameIdent   = "Identifier"
	NameError   = "Error"
)

// ErrorValue is the value attribute every Error node carries.
const ErrorValue = "ERROR"

// Node is one element of the projection.
type Node struct {
	Name       string            `json:"name" msgpack:"name"`
	Attributes map[string]string `json:"attributes,omitempty" msgpack:"attributes,omitempty"`
	Children   []*Node           `json:"children,omitempty" msgpack:"children,omitempty"`
}

// Attr returns the named attribute or "".
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}
	return n.Attributes[key]
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the projection.
func (n *Node) Count() int {
	total := 0
	Walk(n, func(*Node) bool {
		total++
		return true
	})
	return total
}

// FromAST projects the typed tree. A nil tree yields nil.
func FromAST(t *ast.Tree) *Node {
	if t == nil || t.Builder == nil {
		return nil
	}
	root := &Node{Name: NameProgram}
	if body := t.Body(); body.IsValid() {
		root.Children = []*Node{fromExpr(t.Builder.Exprs, body)}
	}
	return root
}

func fromExpr(exprs *ast.Exprs, id ast.ExprID) *Node {
	expr := exprs.Get(id)
	if expr == nil {
		return errorNode()
	}
	switch expr.Kind {
	case ast.ExprBinary:
		bin, _ := exprs.Binary(id)
		return &Node{
			Name:       NameBinary,
			Attributes: map[string]string{"operator": bin.Op.String()},
			Children:   []*Node{fromExpr(exprs, bin.Left), fromExpr(exprs, bin.Right)},
		}
	case ast.ExprNumber:
		leaf, _ := exprs.Leaf(id)
		return &Node{Name: NameNumber, Attributes: map[string]string{"value": leaf.Text}}
	case ast.ExprIdent:
		leaf, _ := exprs.Leaf(id)
		return &Node{Name: NameIdent, Attributes: map[string]string{"value": leaf.Text}}
	case ast.ExprError:
		return errorNode()
	default:
		return errorNode()
	}
}

func errorNode() *Node {
	return &Node{Name: NameError, Attributes: map[string]string{"value": ErrorValue}}
}
