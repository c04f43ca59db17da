// Package token defines the lexical token model shared by every stage.
// Invariants:
//   - Token.Text is the raw lexeme exactly as it appears in the source.
//   - Token.Span covers Text byte for byte; Pos is the resolved start of Span.
//   - Layout tokens (Newline, Indent, Dedent) only appear for
//     indentation-sensitive languages.
//   - Operators of every shape share the single Operator kind; the text
//     distinguishes them.
package token
