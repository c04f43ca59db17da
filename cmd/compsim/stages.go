package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"compsim/internal/diag"
	"compsim/internal/diagfmt"
	"compsim/internal/driver"
	"compsim/internal/lexer"
	"compsim/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|->",
	Short: "Tokenize a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|->",
	Short: "Check a source file against the language grammar",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var treeCmd = &cobra.Command{
	Use:   "tree [flags] <file|->",
	Short: "Build the expression tree of a source file",
	Long:  `Build the expression tree. Input the parser rejects is refused unless --force is given`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <file|->",
	Short: "Report undefined identifiers and division by zero",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	treeCmd.Flags().String("format", "tree", "output format (tree|json)")
	treeCmd.Flags().Bool("force", false, "build the tree even when parsing failed")
	analyzeCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	analyzeCmd.Flags().StringSlice("declare", nil, "names treated as already declared")
	analyzeCmd.Flags().Bool("force", false, "analyze even when parsing failed")
}

// fatal renders a tokenizer failure as a diagnostic and turns it into
// errFailed; any other error is returned unchanged.
func fatal(cmd *cobra.Command, s *session, format string, err error) error {
	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		return err
	}
	d := lexErr.Diagnostic()
	if format == "json" {
		payload := parsePayload{Diagnostics: diagfmt.MakeDiagnosticsJSON([]diag.Diagnostic{d}, 0)}
		if encErr := diagfmt.EncodeJSON(cmd.OutOrStdout(), payload, true); encErr != nil {
			return encErr
		}
		return errFailed
	}
	if prErr := printDiagnostics(cmd, s, []diag.Diagnostic{d}, nil); prErr != nil {
		return prErr
	}
	return errFailed
}

// rejected reports the parse diagnostics of a gated stage.
func rejected(cmd *cobra.Command, s *session, format string, res *driver.ParseResult) error {
	if format == "json" {
		payload := parsePayload{Diagnostics: diagfmt.MakeDiagnosticsJSON(res.Diagnostics, s.maxDiagnostics)}
		if err := diagfmt.EncodeJSON(cmd.OutOrStdout(), payload, true); err != nil {
			return err
		}
		return errFailed
	}
	if err := printDiagnostics(cmd, s, res.Diagnostics, res.File); err != nil {
		return err
	}
	if !s.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "hint: pass --force to %s anyway\n", cmd.Name())
	}
	return errFailed
}

func runTokenize(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, s *session) error {
		format, err := s.format(cmd, "pretty", "json")
		if err != nil {
			return err
		}
		req, err := s.request(cmd, args[0])
		if err != nil {
			return err
		}
		res, err := driver.Tokenize(ctx, req)
		if err != nil {
			return fatal(cmd, s, format, err)
		}
		if format == "json" {
			return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens, true)
		}
		if res.File.Flags&source.FileNotNFC != 0 {
			status(cmd.ErrOrStderr(), s, res.File.Path+": note: source is not in NFC form, identifiers are compared byte-wise")
		}
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens)
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, s *session) error {
		format, err := s.format(cmd, "pretty", "json", "short")
		if err != nil {
			return err
		}
		req, err := s.request(cmd, args[0])
		if err != nil {
			return err
		}
		res, err := driver.Parse(ctx, req)
		if err != nil {
			return fatal(cmd, s, format, err)
		}
		if format == "json" {
			payload := parsePayload{
				Success:     res.Success,
				Diagnostics: diagfmt.MakeDiagnosticsJSON(res.Diagnostics, s.maxDiagnostics),
			}
			if err := diagfmt.EncodeJSON(cmd.OutOrStdout(), payload, true); err != nil {
				return err
			}
		} else {
			if err := printDiagnostics(cmd, s, res.Diagnostics, res.File); err != nil {
				return err
			}
			if res.Success {
				status(cmd.OutOrStdout(), s, fmt.Sprintf("%s: syntax ok (%d tokens)", res.File.Path, len(res.Tokens)))
			}
		}
		if !res.Success {
			return errFailed
		}
		return nil
	})
}

func runTree(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, s *session) error {
		format, err := s.format(cmd, "tree", "json")
		if err != nil {
			return err
		}
		req, err := s.request(cmd, args[0])
		if err != nil {
			return err
		}
		req.Force, _ = cmd.Flags().GetBool("force")
		res, err := driver.BuildTree(ctx, req)
		if errors.Is(err, driver.ErrSyntax) {
			return rejected(cmd, s, format, res.ParseResult)
		}
		if err != nil {
			return fatal(cmd, s, format, err)
		}
		if !res.Success && !s.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: building tree for input with syntax errors")
		}
		if format == "json" {
			return diagfmt.FormatTreeJSON(cmd.OutOrStdout(), res.Tree, true)
		}
		return diagfmt.FormatTree(cmd.OutOrStdout(), res.Tree)
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, s *session) error {
		format, err := s.format(cmd, "pretty", "json", "short")
		if err != nil {
			return err
		}
		req, err := s.request(cmd, args[0])
		if err != nil {
			return err
		}
		req.Force, _ = cmd.Flags().GetBool("force")
		res, err := driver.Analyze(ctx, req)
		if errors.Is(err, driver.ErrSyntax) {
			return rejected(cmd, s, format, res.ParseResult)
		}
		if err != nil {
			return fatal(cmd, s, format, err)
		}
		if format == "json" {
			payload := analyzePayload{
				Success:  res.Success,
				Errors:   diagfmt.MakeDiagnosticsJSON(res.Errors, s.maxDiagnostics),
				Warnings: diagfmt.MakeDiagnosticsJSON(res.Warnings, s.maxDiagnostics),
			}
			if err := diagfmt.EncodeJSON(cmd.OutOrStdout(), payload, true); err != nil {
				return err
			}
		} else {
			all := append(append([]diag.Diagnostic(nil), res.Errors...), res.Warnings...)
			if err := printDiagnostics(cmd, s, all, res.File); err != nil {
				return err
			}
			status(cmd.OutOrStdout(), s, fmt.Sprintf("%s: %d error(s), %d warning(s)", res.File.Path, len(res.Errors), len(res.Warnings)))
		}
		if !res.Success {
			return errFailed
		}
		return nil
	})
}
