package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"compsim/internal/config"
	"compsim/internal/driver"
	"compsim/internal/lang"
	"compsim/internal/observ"
	"compsim/internal/prof"
)

// session is the resolved command environment: compsim.toml values with
// flags layered on top, plus the timer of the current run.
type session struct {
	cfg            *config.Config
	language       lang.Language
	maxDiagnostics int
	declared       []string
	colorErr       bool
	quiet          bool
	timings        bool
	short          bool
	storeDir       string
	timer          *observ.Timer
}

// loadConfig reads --config or discovers compsim.toml from the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	pf := cmd.Root().PersistentFlags()
	s := &session{cfg: cfg, storeDir: cfg.Store.Dir, declared: cfg.Declared}

	langFlag, _ := pf.GetString("lang")
	if pf.Changed("lang") {
		if s.language, err = lang.Parse(langFlag); err != nil {
			return nil, err
		}
	} else if s.language, err = cfg.LanguageValue(); err != nil {
		return nil, err
	}

	s.maxDiagnostics, _ = pf.GetInt("max-diagnostics")
	if !pf.Changed("max-diagnostics") && cfg.IsDefined("max_diagnostics") {
		s.maxDiagnostics = cfg.MaxDiagnostics
	}

	colorFlag, _ := pf.GetString("color")
	if !pf.Changed("color") && cfg.IsDefined("output", "color") {
		colorFlag = cfg.Output.Color
	}
	if s.colorErr, err = resolveColor(colorFlag, os.Stderr); err != nil {
		return nil, err
	}

	s.quiet, _ = pf.GetBool("quiet")
	s.timings, _ = pf.GetBool("timings")
	if s.timings {
		s.timer = observ.NewTimer()
	}

	if f := cmd.Flags().Lookup("declare"); f != nil && f.Changed {
		s.declared, _ = cmd.Flags().GetStringSlice("declare")
	}
	return s, nil
}

// format returns the --format flag when given, else output.format from
// compsim.toml when the command supports it, else the flag default.
func (s *session) format(cmd *cobra.Command, allowed ...string) (string, error) {
	value, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if !cmd.Flags().Changed("format") && s.cfg.IsDefined("output", "format") && slices.Contains(allowed, s.cfg.Output.Format) {
		value = s.cfg.Output.Format
	}
	value = strings.ToLower(value)
	if !slices.Contains(allowed, value) {
		return "", fmt.Errorf("unknown format %q (expected %s)", value, strings.Join(allowed, "|"))
	}
	s.short = value == "short"
	return value, nil
}

// request builds a driver request for a path argument; "-" reads stdin.
func (s *session) request(cmd *cobra.Command, path string) (*driver.Request, error) {
	req := &driver.Request{
		Path:           path,
		Language:       s.language,
		MaxDiagnostics: s.maxDiagnostics,
		Declared:       s.declared,
		Timer:          s.timer,
		Detect:         true,
	}
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		req.Path = ""
		req.Code = string(data)
		if len(data) == 0 {
			return nil, driver.ErrNoCode
		}
	}
	return req, nil
}

// run wraps a command body with tracing and the --timings summary.
func run(cmd *cobra.Command, body func(ctx context.Context, s *session) error) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	profiles, err := startProfiles(cmd)
	if err != nil {
		cleanup(true)
		return err
	}
	err = body(cmd.Context(), s)
	if stopErr := profiles.Stop(); stopErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", stopErr)
	}
	cleanup(err != nil)
	if s.timings && !s.quiet {
		fmt.Fprint(cmd.ErrOrStderr(), s.timer.Summary())
	}
	return err
}

func startProfiles(cmd *cobra.Command) (*prof.Session, error) {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	opts.CPU, _ = pf.GetString("cpuprofile")
	opts.Mem, _ = pf.GetString("memprofile")
	opts.Trace, _ = pf.GetString("exectrace")
	if opts == (prof.Options{}) {
		return nil, nil
	}
	return prof.Start(opts)
}
