package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"compsim/internal/diagfmt"
	"compsim/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect compilations saved with --save",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved compilations, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved compilation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one saved compilation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved compilation",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd, historyClearCmd)
	historyCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	historyListCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	historyShowCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func openStore(s *session) (*store.Store, error) {
	return store.Open(s.storeDir)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	return run(cmd, func(_ context.Context, s *session) error {
		format, err := s.format(cmd, "pretty", "json")
		if err != nil {
			return err
		}
		st, err := openStore(s)
		if err != nil {
			return err
		}
		records, err := st.List()
		if err != nil {
			return err
		}
		if format == "json" {
			if records == nil {
				records = []*store.Record{}
			}
			return diagfmt.EncodeJSON(cmd.OutOrStdout(), records, true)
		}
		if len(records) == 0 {
			status(cmd.OutOrStdout(), s, "no saved compilations in "+st.Dir())
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tLANGUAGE\tSTAGE\tERRORS\tWARNINGS\tSOURCE")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", r.ID, r.Language, r.Stage, len(r.Errors), len(r.Warnings), recordSource(r))
		}
		return tw.Flush()
	})
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	return run(cmd, func(_ context.Context, s *session) error {
		format, err := s.format(cmd, "pretty", "json")
		if err != nil {
			return err
		}
		st, err := openStore(s)
		if err != nil {
			return err
		}
		rec, err := st.Get(args[0])
		if err != nil {
			return err
		}
		if format == "json" {
			return diagfmt.EncodeJSON(cmd.OutOrStdout(), rec, true)
		}
		return printRecord(cmd.OutOrStdout(), rec)
	})
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	return run(cmd, func(_ context.Context, s *session) error {
		st, err := openStore(s)
		if err != nil {
			return err
		}
		if err := st.Delete(args[0]); err != nil {
			return err
		}
		status(cmd.OutOrStdout(), s, "deleted "+args[0])
		return nil
	})
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	return run(cmd, func(_ context.Context, s *session) error {
		st, err := openStore(s)
		if err != nil {
			return err
		}
		if err := st.Drop(); err != nil {
			return err
		}
		status(cmd.OutOrStdout(), s, "history cleared")
		return nil
	})
}

func recordSource(r *store.Record) string {
	if r.Path != "" {
		return r.Path
	}
	return truncateSource(r.Code, 32)
}

func truncateSource(code string, limit int) string {
	runes := []rune(code)
	for i, r := range runes {
		if r == '\n' || r == '\r' {
			runes = runes[:i]
			break
		}
	}
	if len(runes) > limit {
		return string(runes[:limit-1]) + "…"
	}
	return string(runes)
}

func printRecord(w io.Writer, rec *store.Record) error {
	fmt.Fprintf(w, "id:       %s\n", rec.ID)
	fmt.Fprintf(w, "created:  %s\n", rec.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(w, "language: %s\n", rec.Language)
	fmt.Fprintf(w, "stage:    %s\n", rec.Stage)
	fmt.Fprintf(w, "success:  %t\n", rec.Success)
	fmt.Fprintf(w, "source:   %s\n", recordSource(rec))
	fmt.Fprintf(w, "tokens:   %d\n", len(rec.Tokens))
	for _, group := range []struct {
		title string
		diags []store.Diagnostic
	}{{"errors", rec.Errors}, {"warnings", rec.Warnings}} {
		if len(group.diags) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", group.title)
		for _, d := range group.diags {
			fmt.Fprintf(w, "  %d:%d %s[%s] %s\n", d.Line, d.Column, d.Severity, d.Code, d.Message)
		}
	}
	if rec.Tree != nil {
		fmt.Fprintln(w, "tree:")
		return diagfmt.FormatTree(w, rec.Tree)
	}
	return nil
}
