package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"compsim/internal/diagfmt"
	"compsim/internal/driver"
	"compsim/internal/pipeline"
	"compsim/internal/store"
	"compsim/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] <files...>",
	Short: "Compile several files in parallel",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	batchCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	batchCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	batchCmd.Flags().StringSlice("declare", nil, "names treated as already declared")
	batchCmd.Flags().Bool("save", false, "store every outcome in the history")
}

type batchFilePayload struct {
	compilePayload
	Error string `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, s *session) error {
		format, err := s.format(cmd, "pretty", "json", "short")
		if err != nil {
			return err
		}
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
		uiFlag, err := cmd.Flags().GetString("ui")
		if err != nil {
			return fmt.Errorf("failed to get ui flag: %w", err)
		}
		mode, err := readUIMode(uiFlag)
		if err != nil {
			return err
		}

		opts := driver.BatchOptions{
			Template: driver.Request{
				Language:       s.language,
				MaxDiagnostics: s.maxDiagnostics,
				Declared:       s.declared,
				Timer:          s.timer,
				Detect:         true,
			},
			Jobs: jobs,
		}

		var results []driver.FileOutcome
		if format != "json" && !s.quiet && shouldUseTUI(mode) {
			results, err = runBatchWithUI(ctx, args, opts)
		} else {
			results, err = driver.CompileFiles(ctx, args, opts)
		}
		if err != nil {
			return err
		}

		ids := make([]string, len(results))
		if save, _ := cmd.Flags().GetBool("save"); save {
			st, err := store.Open(s.storeDir)
			if err != nil {
				return err
			}
			for i, r := range results {
				if r.Outcome == nil {
					continue
				}
				if ids[i], err = st.Put(r.Outcome.Record()); err != nil {
					return fmt.Errorf("save %s: %w", r.Path, err)
				}
			}
		}

		failed := 0
		for _, r := range results {
			if r.Err != nil || r.Outcome.Failed() {
				failed++
			}
		}

		if format == "json" {
			payload := make([]batchFilePayload, len(results))
			for i, r := range results {
				payload[i].Path = r.Path
				if r.Outcome != nil {
					payload[i].compilePayload = makeCompilePayload(r.Outcome, s.maxDiagnostics)
					payload[i].ID = ids[i]
				}
				if r.Err != nil {
					payload[i].Error = r.Err.Error()
				}
			}
			if err := diagfmt.EncodeJSON(cmd.OutOrStdout(), payload, true); err != nil {
				return err
			}
		} else {
			for i, r := range results {
				if err := printFileOutcome(cmd, s, r); err != nil {
					return err
				}
				if ids[i] != "" {
					status(cmd.OutOrStdout(), s, "  saved as "+ids[i])
				}
			}
			status(cmd.OutOrStdout(), s, fmt.Sprintf("%d file(s), %d failed", len(results), failed))
		}
		if failed > 0 {
			return errFailed
		}
		return nil
	})
}

func printFileOutcome(cmd *cobra.Command, s *session, r driver.FileOutcome) error {
	if r.Outcome != nil {
		if err := printOutcome(cmd, s, r.Outcome); err != nil {
			return err
		}
	}
	if r.Err != nil && (r.Outcome == nil || !isLexFailure(r)) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
	}
	return nil
}

// isLexFailure reports whether the outcome already carries the tokenizer error.
func isLexFailure(r driver.FileOutcome) bool {
	return r.Outcome != nil && r.Outcome.Stage == pipeline.StageTokenization && len(r.Outcome.Errors) > 0
}

type batchOutcome struct {
	results []driver.FileOutcome
	err     error
}

func runBatchWithUI(ctx context.Context, files []string, opts driver.BatchOptions) ([]driver.FileOutcome, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		opts.Progress = pipeline.ChannelSink{Ch: events}
		res, err := driver.CompileFiles(ctx, files, opts)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	uiErr := ui.RunProgress("compsim batch", files, events, os.Stdout)
	// UI мог выйти раньше (ctrl+c): дочитываем события, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, errors.Join(uiErr, outcome.err)
	}
	return outcome.results, outcome.err
}
