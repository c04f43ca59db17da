// Package sema runs the scope/usage check over the expression tree: every
// identifier must be declared, and dividing by a literal zero is worth a
// warning.
package sema
