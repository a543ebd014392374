package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/output"
	"github.com/gorewood/sprout/internal/prompt"
	"github.com/gorewood/sprout/internal/scaffold"
)

// listedTemplate is one leaf in `sprout list --json` output.
type listedTemplate struct {
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
	scaffold.Policy
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the template menu as a tree",
		Long: `Print every group and template from the config file.

With --json, prints the selectable templates as a flat list with their menu
path, source and the git setup sprout would apply.

Examples:
  sprout list          # Show the menu tree
  sprout list --json   # Flat list for scripting`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

// runList executes the list command.
func runList(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	res, err := config.Get()
	if err != nil {
		return err
	}
	cfg := res.Config

	if printer.IsJSON() {
		leaves := config.Leaves(cfg.Templates)
		items := make([]listedTemplate, 0, len(leaves))
		for _, leaf := range leaves {
			items = append(items, listedTemplate{
				Path:        leaf.Path,
				Description: leaf.Template.Description,
				Source:      leaf.Template.URL,
				Policy:      scaffold.Resolve(cfg, leaf.Template),
			})
		}
		return printer.WriteJSON(map[string]any{"templates": items})
	}

	color := printer.IsTTY()
	return config.Walk(cfg.Templates, func(_ string, depth int, t *config.Template) error {
		printer.Println(treeLine(printer, t, depth, color))
		return nil
	})
}

// treeLine renders one node: groups end with "/", leaves show their source.
func treeLine(printer *output.Printer, t *config.Template, depth int, color bool) string {
	name := t.Name
	if color {
		name = prompt.Style(t.Color).Render(name)
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(name)
	switch {
	case t.IsGroup():
		sb.WriteString("/")
	case t.IsLeaf():
		sb.WriteString("  " + printer.Dim(t.URL))
	default:
		sb.WriteString("  " + printer.Dim("(invalid)"))
	}
	if t.Description != "" {
		sb.WriteString("  " + printer.Dim(t.Description))
	}
	return sb.String()
}
