package lexer

import (
	"fmt"

	"compsim/internal/diag"
	"compsim/internal/source"
)

// LexError reports a byte sequence no rule of the language profile accepts.
// It is fatal to tokenization.
type LexError struct {
	Code diag.Code
	Msg  string
	Span source.Span
	Line uint32
	Col  uint32
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %q at line %d, column %d", e.Msg, e.Char, e.Line, e.Col)
}

// Diagnostic converts the error into an ERROR diagnostic, for callers that
// render every failure the same way.
func (e *LexError) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, fmt.Sprintf("%s %q", e.Msg, e.Char)).
		At(source.LineCol{Line: e.Line, Col: e.Col})
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) *LexError {
	r, _ := lx.runeAt(sp.Start)
	pos := lx.file.Position(sp.Start)
	return &LexError{
		Code: code,
		Msg:  msg,
		Span: sp,
		Line: pos.Line,
		Col:  pos.Col,
		Char: r,
	}
}
