package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"compsim/internal/diag"
	"compsim/internal/source"
)

type palette struct {
	err, warn, info, accent, dim *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		accent: color.New(color.FgBlue, color.Bold),
		dim:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.accent, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	error[SYN2010]: Expected number, identifier, or '('
//	  --> main.py:1:3
//	   |
//	 1 | 1+
//	   |   ^ expected number, identifier, or (, found end of input
//
// file may be nil; then only the header and location lines are printed.
func Pretty(w io.Writer, diags []diag.Diagnostic, file *source.File, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	path := displayPath(file, opts)

	n := len(diags)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	for i := range n {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, diags[i], file, path, p); err != nil {
			return err
		}
	}
	if n < len(diags) {
		_, err := fmt.Fprintf(w, "\n... %d more diagnostic(s) omitted\n", len(diags)-n)
		return err
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, file *source.File, path string, p palette) error {
	var b strings.Builder
	sev := p.severity(d.Severity)
	fmt.Fprintf(&b, "%s: %s\n", sev.Sprintf("%s[%s]", strings.ToLower(d.Severity.String()), d.Code.ID()), d.Message)
	fmt.Fprintf(&b, "  %s %s:%d:%d\n", p.accent.Sprint("-->"), path, d.Line, d.Column)

	if file == nil || d.Line == 0 {
		_, err := io.WriteString(w, b.String())
		return err
	}
	line := file.GetLine(d.Line)

	gutter := strconv.FormatUint(uint64(d.Line), 10)
	pad := strings.Repeat(" ", len(gutter))
	bar := p.accent.Sprint("|")
	fmt.Fprintf(&b, "%s %s\n", pad, bar)
	fmt.Fprintf(&b, "%s %s %s\n", p.accent.Sprint(gutter), bar, expandTabs(line))

	offset := caretOffset(line, d.Column)
	width := caretWidth(d, file, line, d.Column)
	underline := sev.Sprint("^" + strings.Repeat("~", width-1))
	fmt.Fprintf(&b, "%s %s %s%s", pad, bar, strings.Repeat(" ", offset), underline)
	if note := expectationNote(d); note != "" {
		fmt.Fprintf(&b, " %s", sev.Sprint(note))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// caretOffset returns the display width of the line before the 1-based rune column.
func caretOffset(line string, col uint32) int {
	if col <= 1 {
		return 0
	}
	runes := []rune(expandTabs(line))
	n := int(col - 1)
	if n > len(runes) {
		return runewidth.StringWidth(string(runes)) + n - len(runes)
	}
	return runewidth.StringWidth(string(runes[:n]))
}

// caretWidth underlines the primary span when it stays on the line, else one cell.
func caretWidth(d diag.Diagnostic, file *source.File, line string, col uint32) int {
	sp := d.Primary
	if col == 0 || sp.Empty() || int(sp.End) > len(file.Content) {
		return 1
	}
	text := string(file.Content[sp.Start:sp.End])
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	rest := []rune(line)
	if int(col) <= len(rest) && !strings.HasPrefix(string(rest[col-1:]), text) {
		return 1
	}
	if wd := runewidth.StringWidth(expandTabs(text)); wd > 0 {
		return wd
	}
	return 1
}

func expectationNote(d diag.Diagnostic) string {
	switch {
	case d.Expected != "" && d.Found != "":
		return fmt.Sprintf("expected %s, found %s", d.Expected, d.Found)
	case d.Expected != "":
		return "expected " + d.Expected
	default:
		return ""
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func displayPath(file *source.File, opts PrettyOpts) string {
	if file == nil || file.Path == "" {
		return "<input>"
	}
	return file.FormatPath(opts.PathMode.String(), opts.BaseDir)
}
