package diagfmt

import (
	"io"
	"sort"
	"strings"

	"compsim/internal/tree"
)

// FormatTree печатает проекцию дерева с отступами:
//
//	Program
//	└─ BinaryExpression (operator=*)
//	   ├─ NumericLiteral (value=2)
//	   └─ ...
func FormatTree(w io.Writer, root *tree.Node) error {
	var b strings.Builder
	if root != nil {
		b.WriteString(nodeLabel(root))
		b.WriteByte('\n')
		writeChildren(&b, root.Children, "")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeChildren(b *strings.Builder, children []*tree.Node, prefix string) {
	for i, child := range children {
		last := i == len(children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(nodeLabel(child))
		b.WriteByte('\n')
		writeChildren(b, child.Children, prefix+next)
	}
}

func nodeLabel(n *tree.Node) string {
	if n == nil {
		return "<nil>"
	}
	if len(n.Attributes) == 0 {
		return n.Name
	}
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+n.Attributes[k])
	}
	return n.Name + " (" + strings.Join(parts, ", ") + ")"
}

// FormatTreeJSON writes the projection in its {name, attributes, children} shape.
func FormatTreeJSON(w io.Writer, root *tree.Node, indent bool) error {
	return EncodeJSON(w, root, indent)
}
