// Package scaffold turns a chosen template into a new project directory:
// it fetches the template snapshot, then optionally runs git init and git add
// according to the merged git policy.
//
// Nothing is rolled back. If git fails after the fetch, the fetched files stay
// on disk.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/navigator"
	"github.com/gorewood/sprout/internal/output"
	"github.com/gorewood/sprout/internal/prompt"
)

// NamePrompt is asked when no project name was given.
const NamePrompt = "Your project name?"

// Fetcher materializes a template source into a directory.
type Fetcher interface {
	Fetch(ctx context.Context, source, dest string) error
}

// VCS initializes version control in a project directory.
type VCS interface {
	Init(ctx context.Context, dir string) error
	AddAll(ctx context.Context, dir string) error
}

// Inputter asks the user for a line of text. It returns prompt.ErrCanceled
// when the user backs out.
type Inputter interface {
	Input(ctx context.Context, title string) (string, error)
}

// Creator wires the collaborators used by Create.
type Creator struct {
	Fetcher Fetcher
	VCS     VCS
	// Input may be nil when a project name is always supplied.
	Input   Inputter
	Printer *output.Printer
	// BaseDir is where projects are created; empty means the working directory.
	BaseDir string
}

// Project describes a created project.
type Project struct {
	Name     string `json:"name"`
	Dir      string `json:"dir"`
	Template string `json:"template"`
	Source   string `json:"source"`
	Policy
}

// Create materializes tmpl as a project called name. An empty name is asked
// for interactively. Canceling that prompt returns navigator.ErrExited wrapped
// in a silent exit error.
func (c *Creator) Create(ctx context.Context, cfg *config.Config, tmpl *config.Template, name string) (*Project, error) {
	if tmpl == nil || !tmpl.IsLeaf() {
		return nil, output.NewUserError("template has no url to fetch")
	}

	name, err := c.projectName(ctx, name)
	if err != nil {
		return nil, err
	}

	dir := name
	if c.BaseDir != "" {
		dir = filepath.Join(c.BaseDir, name)
	}
	policy := Resolve(cfg, tmpl)
	slog.Debug("creating project", "template", tmpl.Name, "dir", dir, "init", policy.Init, "add", policy.Add)

	if err := c.Fetcher.Fetch(ctx, tmpl.URL, dir); err != nil {
		return nil, err
	}
	if policy.Init {
		if err := c.VCS.Init(ctx, dir); err != nil {
			return nil, err
		}
	}
	if policy.Add {
		if err := c.VCS.AddAll(ctx, dir); err != nil {
			return nil, err
		}
	}

	project := &Project{Name: name, Dir: dir, Template: tmpl.Name, Source: tmpl.URL, Policy: policy}
	c.report(project)
	return project, nil
}

func (c *Creator) projectName(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name != "" {
		return name, nil
	}
	if c.Input == nil {
		return "", output.NewUserError("project name is required")
	}

	answer, err := c.Input.Input(ctx, NamePrompt)
	if errors.Is(err, prompt.ErrCanceled) {
		return "", output.NewSilentError(navigator.ErrExited)
	}
	if err != nil {
		return "", output.NewSystemErrorWithCause("reading project name", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", output.NewUserError("project name cannot be empty")
	}
	return answer, nil
}

func (c *Creator) report(p *Project) {
	if c.Printer == nil {
		return
	}
	if c.Printer.IsJSON() {
		if err := c.Printer.WriteJSON(p); err != nil {
			c.Printer.Warn("%v", err)
		}
		return
	}
	c.Printer.Next("Done. Now run:", fmt.Sprintf("cd %s", p.Dir))
}
