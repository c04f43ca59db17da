package diag

import "compsim/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

// At sets the resolved 1-based position.
func (d Diagnostic) At(pos source.LineCol) Diagnostic {
	d.Line, d.Column = pos.Line, pos.Col
	return d
}

// WithExpectation records what the stage wanted and what it saw instead.
func (d Diagnostic) WithExpectation(expected, found string) Diagnostic {
	d.Expected, d.Found = expected, found
	return d
}
