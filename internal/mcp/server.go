// Package mcp provides a Model Context Protocol server for sprout.
// It exposes the template catalog and project creation as MCP tools so an
// agent can scaffold projects without driving the interactive menu.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/scaffold"
)

// ConfigLoader returns the current configuration. It is called on every tool
// invocation so edits made while the server runs are picked up.
type ConfigLoader func() (*config.Config, error)

// NewServer creates an MCP server with all sprout tools registered.
func NewServer(version string, load ConfigLoader, creator *scaffold.Creator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sprout",
		Version: version,
	}, nil)
	registerTools(server, load, creator)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// createAnnotations returns annotations for create_project, which writes a
// new directory and downloads from the network.
func createAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all sprout tools to the server.
func registerTools(server *mcp.Server, load ConfigLoader, creator *scaffold.Creator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List every template in the sprout menu with its menu path, source and the git setup that would be applied.",
		Annotations: readOnlyAnnotations(),
	}, handleListTemplates(load))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a new project directory from a template. The template is named by its menu path as returned by list_templates, e.g. Vue/vitesse.",
		Annotations: createAnnotations(),
	}, handleCreateProject(load, creator))
}
