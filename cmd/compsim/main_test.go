package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"compsim/internal/store"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestReadUIMode(t *testing.T) {
	cases := map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff}
	for in, want := range cases {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatalf("expected error")
	}
	if shouldUseTUI(uiModeOff) || !shouldUseTUI(uiModeOn) {
		t.Fatalf("explicit modes ignored")
	}
}

func TestResolveColor(t *testing.T) {
	if on, err := resolveColor("on", nil); err != nil || !on {
		t.Fatalf("on = %v, %v", on, err)
	}
	if on, err := resolveColor("off", nil); err != nil || on {
		t.Fatalf("off = %v, %v", on, err)
	}
	if _, err := resolveColor("rainbow", nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTruncateSource(t *testing.T) {
	if got := truncateSource("a + b\nc", 32); got != "a + b" {
		t.Fatalf("got %q", got)
	}
	if got := truncateSource("abcdef", 4); got != "abc…" {
		t.Fatalf("got %q", got)
	}
}

func TestCompileSaveAndHistory(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "compsim.toml", "[store]\ndir = \"hist\"\n")
	good := writeFile(t, dir, "calc.py", "1/0\n")
	bad := writeFile(t, dir, "broken.js", "1+")

	out, _, err := execute(t, "--config", cfg, "--color", "off", "compile", "--format", "json", "--save", good)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var payload compilePayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if payload.Stage != "complete" || !payload.Success || len(payload.Warnings) != 1 || payload.ID == "" {
		t.Fatalf("payload = %+v", payload)
	}
	if payload.Language != "python" || payload.Tree == nil {
		t.Fatalf("payload = %+v", payload)
	}

	_, _, err = execute(t, "--config", cfg, "--color", "off", "compile", "--format", "json", "--save", bad)
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v", err)
	}

	out, _, err = execute(t, "--config", cfg, "history", "list", "--format", "json")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var records []*store.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d", len(records))
	}
	var stages []string
	for _, r := range records {
		stages = append(stages, r.Stage)
	}
	if !strings.Contains(strings.Join(stages, ","), "parsing") {
		t.Fatalf("stages = %v", stages)
	}

	if _, _, err := execute(t, "--config", cfg, "history", "clear"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	out, _, err = execute(t, "--config", cfg, "history", "list", "--format", "json")
	if err != nil || strings.TrimSpace(out) != "[]" {
		t.Fatalf("after clear: %q, %v", out, err)
	}
}

func TestTreeGatedUnlessForced(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "compsim.toml", "")
	src := writeFile(t, dir, "expr.c", "2*(3+")

	_, errOut, err := execute(t, "--config", cfg, "--color", "off", "tree", src)
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(errOut, "error[SYN") || !strings.Contains(errOut, "--force") {
		t.Fatalf("stderr = %q", errOut)
	}

	out, _, err := execute(t, "--config", cfg, "--color", "off", "tree", "--force", src)
	if err != nil {
		t.Fatalf("forced tree: %v", err)
	}
	if !strings.HasPrefix(out, "Program\n") {
		t.Fatalf("stdout = %q", out)
	}
}

func TestAnalyzeShortFormatAndDeclare(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "compsim.toml", "declared = [\"z\"]\n")
	src := writeFile(t, dir, "calc.js", "y / 0")

	_, errOut, err := execute(t, "--config", cfg, "--color", "off", "--quiet", "analyze", "--format", "short", src)
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(errOut, "error SEM") || !strings.Contains(errOut, "Undefined variable: y") {
		t.Fatalf("stderr = %q", errOut)
	}
	if !strings.Contains(errOut, "warning SEM3101") {
		t.Fatalf("stderr = %q", errOut)
	}

	_, errOut, err = execute(t, "--config", cfg, "--color", "off", "--quiet", "analyze", "--format", "short", "--declare", "y", src)
	if err != nil {
		t.Fatalf("declared run: %v (stderr %q)", err, errOut)
	}
	if strings.Contains(errOut, "Undefined") || !strings.Contains(errOut, "Division by zero") {
		t.Fatalf("stderr = %q", errOut)
	}
}
