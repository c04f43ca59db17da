package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"compsim/internal/ast"
	"compsim/internal/diag"
	"compsim/internal/lang"
	"compsim/internal/lexer"
	"compsim/internal/parser"
	"compsim/internal/sema"
	"compsim/internal/source"
	"compsim/internal/token"
	"compsim/internal/trace"
	"compsim/internal/tree"
)

type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Language lang.Language
	Tokens   []token.Token
}

// Tokenize runs the tokenizer only. Fatal errors (*lang.ConfigError,
// *lexer.LexError, load failures, ErrNoCode) are returned wrapped.
func Tokenize(ctx context.Context, req *Request) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fs, file, profile, err := req.source()
	if err != nil {
		return nil, err
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "tokenize", trace.ParentFrom(ctx))
	end := req.Timer.Track("tokenize")
	toks, err := lexer.Tokenize(file, profile)
	if err != nil {
		end("failed")
		span.End(err.Error())
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	end(strconv.Itoa(len(toks)) + " tokens")
	span.WithExtra("tokens", strconv.Itoa(len(toks))).End("")

	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Language: profile.Language,
		Tokens:   toks,
	}, nil
}

type ParseResult struct {
	*TokenizeResult
	Success     bool
	Diagnostics []diag.Diagnostic
}

// Parse tokenizes and validates the grammar. Syntax problems are reported in
// Diagnostics, never as an error.
func Parse(ctx context.Context, req *Request) (*ParseResult, error) {
	tr, err := Tokenize(ctx, req)
	if err != nil {
		return nil, err
	}
	return parseTokens(ctx, req, tr), nil
}

func parseTokens(ctx context.Context, req *Request, tr *TokenizeResult) *ParseResult {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "parse", trace.ParentFrom(ctx))
	end := req.Timer.Track("parse")
	res := parser.Parse(tr.Tokens, tr.Language, parser.Options{
		MaxErrors: req.MaxDiagnostics,
		Registry:  req.registry(),
	})
	note := "ok"
	if !res.Success {
		note = strconv.Itoa(len(res.Diagnostics)) + " diagnostics"
	}
	end(note)
	span.End(note)
	return &ParseResult{
		TokenizeResult: tr,
		Success:        res.Success,
		Diagnostics:    res.Diagnostics,
	}
}

type TreeResult struct {
	*ParseResult
	AST  *ast.Tree
	Tree *tree.Node
}

// BuildTree parses and, when parsing succeeded (or req.Force is set), builds
// the expression tree. A rejected parse returns the result with its
// diagnostics and an error wrapping ErrSyntax.
func BuildTree(ctx context.Context, req *Request) (*TreeResult, error) {
	pr, err := Parse(ctx, req)
	if err != nil {
		return nil, err
	}
	res := &TreeResult{ParseResult: pr}
	if !pr.Success && !req.Force {
		return res, fmt.Errorf("cannot generate tree: %w", ErrSyntax)
	}
	res.AST, res.Tree = buildTree(ctx, req, pr.TokenizeResult)
	return res, nil
}

func buildTree(ctx context.Context, req *Request, tr *TokenizeResult) (*ast.Tree, *tree.Node) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "build_tree", trace.ParentFrom(ctx))
	end := req.Timer.Track("build_tree")
	t := ast.Build(tr.Tokens, tr.Language)
	node := tree.FromAST(t)
	nodes := strconv.Itoa(node.Count()) + " nodes"
	end(nodes)
	span.End(nodes)
	return t, node
}

type AnalyzeResult struct {
	*TreeResult
	Success  bool
	Errors   []diag.Diagnostic
	Warnings []diag.Diagnostic
}

// Analyze runs every stage, gated on the parse like BuildTree.
func Analyze(ctx context.Context, req *Request) (*AnalyzeResult, error) {
	tr, err := BuildTree(ctx, req)
	if errors.Is(err, ErrSyntax) {
		return &AnalyzeResult{TreeResult: tr}, fmt.Errorf("cannot analyze: %w", ErrSyntax)
	}
	if err != nil {
		return nil, err
	}
	res := analyzeTree(ctx, req, tr.TokenizeResult, tr.AST)
	res.TreeResult = tr
	return res, nil
}

func analyzeTree(ctx context.Context, req *Request, tr *TokenizeResult, t *ast.Tree) *AnalyzeResult {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "analyze", trace.ParentFrom(ctx))
	end := req.Timer.Track("analyze")
	res := sema.Analyze(t, tr.Language, sema.Options{
		Declared: req.Declared,
		File:     tr.File,
	})
	note := strconv.Itoa(len(res.Errors)) + " errors, " + strconv.Itoa(len(res.Warnings)) + " warnings"
	end(note)
	span.End(note)
	return &AnalyzeResult{
		Success:  res.Success,
		Errors:   res.Errors,
		Warnings: res.Warnings,
	}
}
