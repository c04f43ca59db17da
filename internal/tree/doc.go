// Package tree holds the rendering projection of the expression AST: plain
// named nodes with string attributes, shaped for JSON and for visualisers.
package tree
