package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"compsim/internal/diagfmt"
	"compsim/internal/driver"
	"compsim/internal/lexer"
	"compsim/internal/store"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] <file|->",
	Short: "Run every stage and report how far the source got",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	compileCmd.Flags().StringSlice("declare", nil, "names treated as already declared")
	compileCmd.Flags().Bool("save", false, "store the outcome in the history")
	compileCmd.Flags().Bool("tree", false, "print the expression tree in pretty mode")
}

func runCompile(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, s *session) error {
		format, err := s.format(cmd, "pretty", "json", "short")
		if err != nil {
			return err
		}
		req, err := s.request(cmd, args[0])
		if err != nil {
			return err
		}
		out, err := driver.Compile(ctx, req)
		var lexErr *lexer.LexError
		if err != nil && !errors.As(err, &lexErr) {
			return err
		}

		var id string
		if save, _ := cmd.Flags().GetBool("save"); save {
			st, openErr := store.Open(s.storeDir)
			if openErr != nil {
				return openErr
			}
			if id, err = st.Put(out.Record()); err != nil {
				return fmt.Errorf("save outcome: %w", err)
			}
		}

		if format == "json" {
			payload := makeCompilePayload(out, s.maxDiagnostics)
			payload.ID = id
			if err := diagfmt.EncodeJSON(cmd.OutOrStdout(), payload, true); err != nil {
				return err
			}
		} else {
			if err := printOutcome(cmd, s, out); err != nil {
				return err
			}
			if id != "" {
				status(cmd.OutOrStdout(), s, "saved as "+id)
			}
		}
		if out.Failed() {
			return errFailed
		}
		return nil
	})
}

func printOutcome(cmd *cobra.Command, s *session, out *driver.Outcome) error {
	all := slices.Concat(out.Errors, out.Warnings)
	if err := printDiagnostics(cmd, s, all, out.File); err != nil {
		return err
	}
	if showTree, _ := cmd.Flags().GetBool("tree"); showTree && out.Tree != nil {
		if err := diagfmt.FormatTree(cmd.OutOrStdout(), out.Tree); err != nil {
			return err
		}
	}
	status(cmd.OutOrStdout(), s, summarize(out))
	return nil
}

func summarize(out *driver.Outcome) string {
	name := out.Path
	if name == "" {
		name = "<input>"
	}
	verdict := "ok"
	if out.Failed() {
		verdict = "failed"
	}
	return fmt.Sprintf("%s: %s at %s, %d token(s), %d error(s), %d warning(s)",
		name, verdict, out.Stage, len(out.Tokens), len(out.Errors), len(out.Warnings))
}
