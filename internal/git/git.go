// Package git runs the git binary for the sprout CLI.
package git

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/gorewood/sprout/internal/output"
)

// Runner executes git subcommands with output streamed to Stdout and Stderr.
// Nil writers fall back to the process's own output streams. A nil Stdin
// gives git no input.
type Runner struct {
	// Binary is the git executable; defaults to "git" resolved from PATH.
	Binary string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner writing to stdout and stderr.
func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{Stdout: stdout, Stderr: stderr}
}

// Init runs `git init <dir>`.
func (r *Runner) Init(ctx context.Context, dir string) error {
	return r.Stream(ctx, "", "init", dir)
}

// AddAll runs `git add .` inside dir.
func (r *Runner) AddAll(ctx context.Context, dir string) error {
	return r.Stream(ctx, dir, "add", ".")
}

// Stream executes a git command in dir (the current directory when empty),
// passing its output straight through. Returns an *output.ExitError on failure.
func (r *Runner) Stream(ctx context.Context, dir string, args ...string) error {
	bin := r.Binary
	if bin == "" {
		bin = "git"
	}
	slog.Debug("running git", "dir", dir, "args", args)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = writerOr(r.Stdout, os.Stdout)
	cmd.Stderr = writerOr(r.Stderr, os.Stderr)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return &output.ExitError{
			Code:    output.ExitSystemError,
			Message: "git not found: ensure git is installed and in PATH",
			Cause:   err,
		}
	}
	return output.NewSystemErrorWithCause("git "+strings.Join(args, " ")+" failed", err)
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
