package sema

import (
	"compsim/internal/ast"
	"compsim/internal/diag"
	"compsim/internal/lang"
	"compsim/internal/source"
)

// Options configure one analysis run.
type Options struct {
	// Declared seeds the symbol table. Nothing in the tree declares names.
	Declared []string
	// File resolves spans to line/column; without it positions stay zero.
	File *source.File
	// Reporter, if set, also receives every diagnostic as it is produced.
	Reporter diag.Reporter
}

// Result stores the outcome of the analysis.
type Result struct {
	Success  bool
	Errors   []diag.Diagnostic
	Warnings []diag.Diagnostic
}

// Analyze walks the tree once, depth-first. Success is false iff at least one
// error was produced; warnings never affect it.
func Analyze(t *ast.Tree, language lang.Language, opts Options) Result {
	a := analyzer{
		symbols:  NewSymbolTable(opts.Declared...),
		file:     opts.File,
		reporter: opts.Reporter,
		language: language,
	}
	if t != nil && t.Builder != nil {
		a.exprs = t.Builder.Exprs
		a.walk(t.Body())
	}
	return a.result()
}

type analyzer struct {
	exprs    *ast.Exprs
	symbols  *SymbolTable
	file     *source.File
	reporter diag.Reporter
	language lang.Language

	errors   []diag.Diagnostic
	warnings []diag.Diagnostic
}

func (a *analyzer) walk(id ast.ExprID) {
	expr := a.exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprIdent:
		leaf, _ := a.exprs.Leaf(id)
		a.checkIdent(leaf.Text, expr.Span)
	case ast.ExprBinary:
		bin, _ := a.exprs.Binary(id)
		if bin.Op == ast.ExprBinaryDiv && a.isZeroLiteral(bin.Right) {
			a.addWarning(diag.SemaDivisionByZero, expr.Span, "Division by zero")
		}
		a.walk(bin.Left)
		a.walk(bin.Right)
	case ast.ExprNumber, ast.ExprError:
		// inert
	}
}

func (a *analyzer) isZeroLiteral(id ast.ExprID) bool {
	expr := a.exprs.Get(id)
	if expr == nil || expr.Kind != ast.ExprNumber {
		return false
	}
	leaf, _ := a.exprs.Leaf(id)
	return isZeroText(leaf.Text)
}

func (a *analyzer) checkIdent(name string, sp source.Span) {
	if a.symbols.Has(name) {
		return
	}
	a.addError(diag.SemaUndefinedVariable, sp, undefinedMessage(name))
}

func (a *analyzer) addError(code diag.Code, sp source.Span, msg string) {
	d := a.locate(diag.NewError(code, sp, msg), sp)
	a.errors = append(a.errors, d)
	a.forward(d)
}

func (a *analyzer) addWarning(code diag.Code, sp source.Span, msg string) {
	d := a.locate(diag.NewWarning(code, sp, msg), sp)
	a.warnings = append(a.warnings, d)
	a.forward(d)
}

func (a *analyzer) locate(d diag.Diagnostic, sp source.Span) diag.Diagnostic {
	if a.file == nil {
		return d
	}
	return d.At(a.file.Position(sp.Start))
}

func (a *analyzer) forward(d diag.Diagnostic) {
	if a.reporter != nil {
		a.reporter.Report(d)
	}
}

func (a *analyzer) result() Result {
	return Result{
		Success:  len(a.errors) == 0,
		Errors:   a.errors,
		Warnings: a.warnings,
	}
}

func undefinedMessage(name string) string {
	return "Undefined variable: " + name
}

// Только буквальный "0"; "0.0" и "00" не считаются.
func isZeroText(text string) bool {
	return text == "0"
}
