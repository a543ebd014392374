package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/output"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	var pathFlag, checkFlag bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Edit the template configuration",
		Long: `Open the sprout configuration file in your editor.

On first use the file does not exist yet: sprout writes the built-in default
template list and exits without opening the editor. Run the command again to
edit it.

The editor is taken from $VISUAL, then $EDITOR, then the system opener.

Examples:
  sprout config           # Edit the config file
  sprout config --path    # Print where the config file lives
  sprout config --check   # Validate the template tree`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, pathFlag, checkFlag)
		},
	}
	cmd.Flags().BoolVar(&pathFlag, "path", false, "Print the config file path and exit")
	cmd.Flags().BoolVar(&checkFlag, "check", false, "Validate the config instead of editing it")
	cmd.MarkFlagsMutuallyExclusive("path", "check")
	return cmd
}

// runConfig executes the config command.
func runConfig(cmd *cobra.Command, showPath, check bool) error {
	printer := newPrinter(cmd)

	if showPath {
		file := config.Path()
		if file == "" {
			return output.NewSystemError("cannot resolve config directory: set SPROUT_CONFIG_HOME")
		}
		if printer.IsJSON() {
			return printer.WriteJSON(map[string]any{"path": file})
		}
		printer.Println(file)
		return nil
	}

	res, err := config.Get()
	if err != nil {
		return err
	}

	if res.Init {
		return printer.Success(map[string]any{
			"status":  "created",
			"path":    res.File,
			"message": "Created default config at " + res.File,
		})
	}

	if check {
		if err := res.Config.Validate(); err != nil {
			return &output.ExitError{Code: output.ExitUserError, Message: "bad config: " + err.Error(), Cause: err}
		}
		count := len(config.Leaves(res.Config.Templates))
		return printer.Success(map[string]any{
			"status":    "ok",
			"path":      res.File,
			"templates": count,
			"message":   fmt.Sprintf("%s is valid (%d templates)", res.File, count),
		})
	}

	return config.Edit(cmd.Context(), res.File)
}
