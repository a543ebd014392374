package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/scaffold"
)

// --- list_templates ---

// ListTemplatesInput is the input for the list_templates tool (no parameters).
type ListTemplatesInput struct{}

// TemplateSummary describes one selectable template.
type TemplateSummary struct {
	Path        string `json:"path"                  jsonschema:"menu path, e.g. Vue/vitesse"`
	Description string `json:"description,omitempty" jsonschema:"template description"`
	Source      string `json:"source"                jsonschema:"degit source the template is fetched from"`
	GitInit     bool   `json:"git_init"              jsonschema:"whether git init runs after fetching"`
	GitAdd      bool   `json:"git_add"               jsonschema:"whether git add runs after init"`
}

// ListTemplatesOutput is the output for the list_templates tool.
type ListTemplatesOutput struct {
	Count     int               `json:"count"     jsonschema:"number of templates"`
	Templates []TemplateSummary `json:"templates" jsonschema:"selectable templates in menu order"`
}

func handleListTemplates(load ConfigLoader) mcp.ToolHandlerFor[ListTemplatesInput, ListTemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListTemplatesInput) (*mcp.CallToolResult, ListTemplatesOutput, error) {
		cfg, err := loadValid(load)
		if err != nil {
			return nil, ListTemplatesOutput{}, err
		}

		leaves := config.Leaves(cfg.Templates)
		out := ListTemplatesOutput{
			Count:     len(leaves),
			Templates: make([]TemplateSummary, 0, len(leaves)),
		}
		for _, leaf := range leaves {
			policy := scaffold.Resolve(cfg, leaf.Template)
			out.Templates = append(out.Templates, TemplateSummary{
				Path:        leaf.Path,
				Description: leaf.Template.Description,
				Source:      leaf.Template.URL,
				GitInit:     policy.Init,
				GitAdd:      policy.Add,
			})
		}
		return nil, out, nil
	}
}

// --- create_project ---

// CreateProjectInput is the input for the create_project tool.
type CreateProjectInput struct {
	Template string `json:"template" jsonschema:"menu path of the template, e.g. Vue/vitesse"`
	Name     string `json:"name"     jsonschema:"project directory to create"`
}

// CreateProjectOutput is the output for the create_project tool.
type CreateProjectOutput struct {
	Name    string `json:"name"     jsonschema:"project name"`
	Dir     string `json:"dir"      jsonschema:"directory the project was created in"`
	Source  string `json:"source"   jsonschema:"degit source that was fetched"`
	GitInit bool   `json:"git_init" jsonschema:"whether git init ran"`
	GitAdd  bool   `json:"git_add"  jsonschema:"whether git add ran"`
}

func handleCreateProject(load ConfigLoader, creator *scaffold.Creator) mcp.ToolHandlerFor[CreateProjectInput, CreateProjectOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateProjectInput) (*mcp.CallToolResult, CreateProjectOutput, error) {
		if strings.TrimSpace(input.Template) == "" {
			return nil, CreateProjectOutput{}, errors.New("template is required")
		}
		if strings.TrimSpace(input.Name) == "" {
			return nil, CreateProjectOutput{}, errors.New("name is required")
		}

		cfg, err := loadValid(load)
		if err != nil {
			return nil, CreateProjectOutput{}, err
		}
		tmpl, err := config.Find(cfg.Templates, input.Template)
		if err != nil {
			return nil, CreateProjectOutput{}, err
		}

		project, err := creator.Create(ctx, cfg, tmpl, input.Name)
		if err != nil {
			return nil, CreateProjectOutput{}, fmt.Errorf("creating %s: %w", input.Name, err)
		}
		return nil, CreateProjectOutput{
			Name:    project.Name,
			Dir:     project.Dir,
			Source:  project.Source,
			GitInit: project.Init,
			GitAdd:  project.Add,
		}, nil
	}
}

// loadValid loads the configuration and rejects a malformed template tree up
// front, since there is no menu to surface the problem lazily.
func loadValid(load ConfigLoader) (*config.Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
