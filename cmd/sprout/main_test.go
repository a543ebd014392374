package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/fang"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/navigator"
	"github.com/gorewood/sprout/internal/output"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolateConfig points the config directory at a fresh temp dir.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SPROUT_CONFIG_HOME", dir)
	return filepath.Join(dir, config.FileName)
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "1.2.3") {
		t.Errorf("--version output should contain version: %q", out)
	}
	if !strings.Contains(out, "sprout") {
		t.Errorf("--version output should contain 'sprout': %q", out)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"sprout", "Usage:", "[projectName]", "--json", "--verbose", "config", "list", "serve"} {
		if !strings.Contains(out, expected) {
			t.Errorf("--help output should contain %q: %q", expected, out)
		}
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"json", "color", "verbose"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag", name)
		}
	}
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	isolateConfig(t)
	if _, _, err := execute(t, "one", "two"); err == nil {
		t.Error("expected error for two project names")
	}
}

func TestConfigCommand_FirstRunDoesNotEdit(t *testing.T) {
	file := isolateConfig(t)
	// An editor that fails: if it ran, the command would error.
	t.Setenv("VISUAL", "false")

	out, _, err := execute(t, "config")
	if err != nil {
		t.Fatalf("first run error = %v", err)
	}
	if !strings.Contains(out, "Created default config") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(file); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// Second run opens the editor.
	_, _, err = execute(t, "config")
	if output.GetExitCode(err) != output.ExitSystemError {
		t.Errorf("second run with failing editor: err = %v, want system error", err)
	}

	t.Setenv("VISUAL", "true")
	if _, _, err := execute(t, "config"); err != nil {
		t.Errorf("second run with working editor: err = %v", err)
	}
}

func TestConfigCommand_Path(t *testing.T) {
	file := isolateConfig(t)

	out, _, err := execute(t, "config", "--path")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != file {
		t.Errorf("--path = %q, want %q", out, file)
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Error("--path should not create the config file")
	}
}

func TestConfigCommand_Check(t *testing.T) {
	file := isolateConfig(t)
	if _, _, err := execute(t, "config"); err != nil {
		t.Fatalf("init error = %v", err)
	}

	out, _, err := execute(t, "config", "--check", "--json")
	if err != nil {
		t.Fatalf("--check error = %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, out)
	}
	if result["status"] != "ok" {
		t.Errorf("status = %v, want ok", result["status"])
	}

	bad := "templates:\n  - name: broken\n"
	if err := os.WriteFile(file, []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err = execute(t, "config", "--check")
	var badErr *config.BadTemplateError
	if !errors.As(err, &badErr) || output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("--check on bad config: err = %v", err)
	}
}

func TestListCommand_JSON(t *testing.T) {
	isolateConfig(t)

	out, _, err := execute(t, "list", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Templates []struct {
			Path   string `json:"path"`
			Source string `json:"source"`
			Init   bool   `json:"init"`
			Add    bool   `json:"add"`
		} `json:"templates"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, out)
	}

	byPath := map[string]int{}
	for i, tmpl := range result.Templates {
		byPath[tmpl.Path] = i
	}
	goBuild, ok := byPath["Go/go-build"]
	if !ok {
		t.Fatalf("Go/go-build missing from %s", out)
	}
	if got := result.Templates[goBuild]; !got.Init || !got.Add {
		t.Errorf("Go/go-build policy = %+v, want init+add", got)
	}
	if got := result.Templates[byPath["Vue/vitesse"]]; !got.Init || got.Add {
		t.Errorf("Vue/vitesse policy = %+v, want init only", got)
	}
}

func TestListCommand_Tree(t *testing.T) {
	isolateConfig(t)

	out, _, err := execute(t, "list", "--color", "never")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Vue/\n", "  vitesse  antfu/vitesse", "Library  egoist/ts-lib-starter"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}
}

func TestRootCommand_BadConfigFailsBeforePrompt(t *testing.T) {
	file := isolateConfig(t)
	if err := os.WriteFile(file, []byte("templates:\n  - name: broken\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "demo")
	var badErr *config.BadTemplateError
	if !errors.As(err, &badErr) {
		t.Fatalf("err = %v, want *config.BadTemplateError", err)
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want 1", output.GetExitCode(err))
	}
}

func TestRootCommand_ParseErrorExitsOne(t *testing.T) {
	file := isolateConfig(t)
	if err := os.WriteFile(file, []byte("templates: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t)
	var parseErr *config.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *config.ParseError", err)
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want 1", output.GetExitCode(err))
	}
}

func TestMenuError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		silent   bool
	}{
		{"exited", navigator.ErrExited, output.ExitUserError, true},
		{"wrapped exited", fmt.Errorf("menu: %w", navigator.ErrExited), output.ExitUserError, true},
		{"bad template", &config.BadTemplateError{Name: "x", Reason: "neither url nor children set"}, output.ExitUserError, false},
		{"terminal failure", errors.New("no tty"), output.ExitSystemError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := menuError(tt.err)
			if got := output.GetExitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d", got, tt.wantCode)
			}
			if got := output.IsSilent(err); got != tt.silent {
				t.Errorf("silent = %v, want %v", got, tt.silent)
			}
		})
	}
}

func TestNewGitRunner_JSONModeKeepsStdoutClean(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStdout bool
	}{
		{"text mode", []string{"demo"}, true},
		{"json mode", []string{"--json", "demo"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			var stdout, stderr bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}

			runner := newGitRunner(cmd)
			if got := runner.Stdout == &stdout; got != tt.wantStdout {
				t.Errorf("git writes to stdout = %v, want %v", got, tt.wantStdout)
			}
			if runner.Stderr != &stderr {
				t.Error("git stderr should go to the command's stderr")
			}
		})
	}
}

func TestErrorHandler_SilentPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	errorHandler(&buf, fang.Styles{}, output.NewSilentError(navigator.ErrExited))
	if buf.Len() != 0 {
		t.Errorf("silent error printed %q", buf.String())
	}

	errorHandler(&buf, fang.Styles{}, output.NewUserError("bad thing"))
	if !strings.Contains(buf.String(), "bad thing") {
		t.Errorf("user error not printed: %q", buf.String())
	}
}

func TestBuildVersion(t *testing.T) {
	version, commit, date = "1.0.0", "abcdef1234", "2026-01-01"
	t.Cleanup(func() { version, commit, date = "dev", "none", "unknown" })

	if got := buildVersion(); got != "1.0.0 (abcdef1, 2026-01-01)" {
		t.Errorf("buildVersion() = %q", got)
	}
}

func TestNewServeCmd(t *testing.T) {
	cmd := newServeCmd()

	if cmd.Use != "serve" {
		t.Errorf("Use = %q, want %q", cmd.Use, "serve")
	}
	if cmd.RunE == nil {
		t.Error("RunE is nil")
	}
}

func TestLoadConfig(t *testing.T) {
	isolateConfig(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
