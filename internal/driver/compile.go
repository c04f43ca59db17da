package driver

import (
	"context"
	"errors"
	"time"

	"compsim/internal/ast"
	"compsim/internal/diag"
	"compsim/internal/lang"
	"compsim/internal/lexer"
	"compsim/internal/pipeline"
	"compsim/internal/source"
	"compsim/internal/token"
	"compsim/internal/trace"
	"compsim/internal/tree"
)

// Outcome is the result of a full pipeline run.
type Outcome struct {
	Path     string
	Code     string
	Language lang.Language
	File     *source.File
	// Stage is the last stage reached: parsing when the parse failed,
	// tokenization when the tokenizer gave up, otherwise semantic_analysis or
	// complete.
	Stage    pipeline.Stage
	Success  bool
	Tokens   []token.Token
	AST      *ast.Tree
	Tree     *tree.Node
	Errors   []diag.Diagnostic
	Warnings []diag.Diagnostic
	Created  time.Time
}

// Compile runs the whole pipeline and stops at the first stage that fails.
// A tokenizer failure yields an Outcome at the tokenization stage carrying
// the error as a diagnostic, together with the wrapped *lexer.LexError.
// Configuration and input errors return a nil Outcome.
func Compile(ctx context.Context, req *Request) (*Outcome, error) {
	t := trace.FromContext(ctx)
	root := trace.Begin(t, trace.ScopeDriver, "compile", trace.ParentFrom(ctx))
	ctx = trace.WithParent(ctx, root)
	defer root.End("")

	out := &Outcome{
		Path:     req.Path,
		Language: req.Language,
		Stage:    pipeline.StageTokenization,
		Created:  time.Now().UTC(),
	}

	req.enter(pipeline.StageTokenization)
	tr, err := Tokenize(ctx, req)
	if err != nil {
		var lexErr *lexer.LexError
		if !errors.As(err, &lexErr) {
			trace.Failure(t, "compile", err)
			return nil, err
		}
		out.Code = req.Code
		out.Errors = []diag.Diagnostic{lexErr.Diagnostic()}
		root.WithExtra("stage", string(out.Stage))
		return out, err
	}
	out.File = tr.File
	out.Code = string(tr.File.Content)
	out.Language = tr.Language
	out.Tokens = tr.Tokens

	out.Stage = pipeline.StageParsing
	req.enter(out.Stage)
	pr := parseTokens(ctx, req, tr)
	if !pr.Success {
		out.Errors = pr.Diagnostics
		root.WithExtra("stage", string(out.Stage))
		return out, nil
	}

	out.Stage = pipeline.StageASTGeneration
	req.enter(out.Stage)
	out.AST, out.Tree = buildTree(ctx, req, tr)

	out.Stage = pipeline.StageSemanticAnalysis
	req.enter(out.Stage)
	ar := analyzeTree(ctx, req, tr, out.AST)
	out.Success = ar.Success
	out.Errors = ar.Errors
	out.Warnings = ar.Warnings
	if ar.Success {
		out.Stage = pipeline.StageComplete
	}
	root.WithExtra("stage", string(out.Stage))
	return out, nil
}

// Failed reports whether the reached stage produced errors.
func (o *Outcome) Failed() bool {
	return o == nil || !o.Success
}
