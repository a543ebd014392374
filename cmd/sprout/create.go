package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/degit"
	"github.com/gorewood/sprout/internal/git"
	"github.com/gorewood/sprout/internal/navigator"
	"github.com/gorewood/sprout/internal/output"
	"github.com/gorewood/sprout/internal/prompt"
	"github.com/gorewood/sprout/internal/scaffold"
)

// runCreate is the root command: pick a template, then create the project.
// Prompts render on stderr so stdout only carries the result.
func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	res, err := config.Get()
	if err != nil {
		return err
	}
	if res.Init {
		slog.Debug("wrote default config", "file", res.File)
	}

	term := prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())
	tmpl, err := navigator.Navigate(ctx, res.Config.Templates, term)
	if err != nil {
		return menuError(err)
	}

	fetcher, err := degit.New(degit.OptionsFromEnv())
	if err != nil {
		return output.NewSystemErrorWithCause("setting up fetcher", err)
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	creator := &scaffold.Creator{
		Fetcher: fetcher,
		VCS:     newGitRunner(cmd),
		Input:   term,
		Printer: newPrinter(cmd),
	}
	_, err = creator.Create(ctx, res.Config, tmpl, name)
	return err
}

// newGitRunner streams git's output to stdout, or to stderr in --json mode
// where stdout holds only the JSON result.
func newGitRunner(cmd *cobra.Command) *git.Runner {
	stdout := cmd.OutOrStdout()
	if isJSONMode(cmd) {
		stdout = cmd.ErrOrStderr()
	}
	runner := git.NewRunner(stdout, cmd.ErrOrStderr())
	runner.Stdin = cmd.InOrStdin()
	return runner
}

// menuError maps a Navigate failure to an exit error.
func menuError(err error) error {
	var bad *config.BadTemplateError
	switch {
	case errors.Is(err, navigator.ErrExited):
		return output.NewSilentError(err)
	case errors.As(err, &bad):
		return &output.ExitError{Code: output.ExitUserError, Message: "bad config: " + err.Error(), Cause: err}
	default:
		return output.NewSystemErrorWithCause("template menu", err)
	}
}
