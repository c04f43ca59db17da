package driver

import (
	"compsim/internal/diag"
	"compsim/internal/store"
	"compsim/internal/token"
)

// Record converts the outcome into its stored form.
func (o *Outcome) Record() *store.Record {
	return &store.Record{
		Path:      o.Path,
		Code:      o.Code,
		Language:  o.Language.String(),
		Tokens:    storeTokens(o.Tokens),
		Tree:      o.Tree,
		Success:   o.Success,
		Errors:    storeDiagnostics(o.Errors),
		Warnings:  storeDiagnostics(o.Warnings),
		Stage:     string(o.Stage),
		CreatedAt: o.Created,
	}
}

func storeTokens(toks []token.Token) []store.Token {
	out := make([]store.Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, store.Token{Kind: tok.Kind.String(), Text: tok.Text, Line: tok.Line(), Column: tok.Column()})
	}
	return out
}

func storeDiagnostics(diags []diag.Diagnostic) []store.Diagnostic {
	out := make([]store.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, store.Diagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Line:     d.Line,
			Column:   d.Column,
			Expected: d.Expected,
			Found:    d.Found,
		})
	}
	return out
}
