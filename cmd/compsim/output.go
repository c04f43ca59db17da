package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"compsim/internal/diag"
	"compsim/internal/diagfmt"
	"compsim/internal/driver"
	"compsim/internal/source"
	"compsim/internal/tree"
)

type parsePayload struct {
	Success     bool                     `json:"success"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics"`
}

type analyzePayload struct {
	Success  bool                     `json:"success"`
	Errors   []diagfmt.DiagnosticJSON `json:"errors"`
	Warnings []diagfmt.DiagnosticJSON `json:"warnings"`
}

type compilePayload struct {
	ID       string                   `json:"id,omitempty"`
	Path     string                   `json:"path,omitempty"`
	Language string                   `json:"language"`
	Stage    string                   `json:"stage"`
	Success  bool                     `json:"success"`
	Tokens   []diagfmt.TokenOutput    `json:"tokens"`
	Tree     *tree.Node               `json:"tree,omitempty"`
	Errors   []diagfmt.DiagnosticJSON `json:"errors"`
	Warnings []diagfmt.DiagnosticJSON `json:"warnings"`
}

func makeCompilePayload(out *driver.Outcome, limit int) compilePayload {
	return compilePayload{
		Path:     out.Path,
		Language: out.Language.String(),
		Stage:    string(out.Stage),
		Success:  out.Success,
		Tokens:   diagfmt.MakeTokensJSON(out.Tokens),
		Tree:     out.Tree,
		Errors:   diagfmt.MakeDiagnosticsJSON(out.Errors, limit),
		Warnings: diagfmt.MakeDiagnosticsJSON(out.Warnings, limit),
	}
}

// printDiagnostics writes diags to stderr, one line each for --format short.
func printDiagnostics(cmd *cobra.Command, s *session, diags []diag.Diagnostic, file *source.File) error {
	if len(diags) == 0 {
		return nil
	}
	if s.short {
		path := ""
		if file != nil {
			path = file.Path
		}
		_, err := fmt.Fprintln(cmd.ErrOrStderr(), diag.FormatShortDiagnostics(diags, path))
		return err
	}
	return diagfmt.Pretty(cmd.ErrOrStderr(), diags, file, diagfmt.PrettyOpts{
		Color: s.colorErr,
		Max:   s.maxDiagnostics,
	})
}

// status prints a one-line summary unless --quiet is set.
func status(w io.Writer, s *session, line string) {
	if s.quiet {
		return
	}
	_, _ = io.WriteString(w, line+"\n")
}
