package diagfmt

import (
	"encoding/json"
	"io"

	"compsim/internal/diag"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Line     uint32 `json:"line"`
	Column   uint32 `json:"column"`
	Expected string `json:"expected,omitempty"`
	Found    string `json:"found,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// MakeDiagnosticJSON converts one diagnostic.
func MakeDiagnosticJSON(d diag.Diagnostic) DiagnosticJSON {
	return DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Line:     d.Line,
		Column:   d.Column,
		Expected: d.Expected,
		Found:    d.Found,
	}
}

// MakeDiagnosticsJSON converts a list, keeping at most max entries when max > 0.
// The result is never nil so it encodes as [].
func MakeDiagnosticsJSON(diags []diag.Diagnostic, limit int) []DiagnosticJSON {
	n := len(diags)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]DiagnosticJSON, 0, n)
	for _, d := range diags[:n] {
		out = append(out, MakeDiagnosticJSON(d))
	}
	return out
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(diags []diag.Diagnostic, opts JSONOpts) DiagnosticsOutput {
	items := MakeDiagnosticsJSON(diags, opts.Max)
	return DiagnosticsOutput{Diagnostics: items, Count: len(items)}
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, diags []diag.Diagnostic, opts JSONOpts) error {
	return EncodeJSON(w, BuildDiagnosticsOutput(diags, opts), opts.Indent)
}

// EncodeJSON writes v followed by a newline.
func EncodeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
