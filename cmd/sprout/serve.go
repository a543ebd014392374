package main

import (
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/degit"
	"github.com/gorewood/sprout/internal/git"
	sproutmcp "github.com/gorewood/sprout/internal/mcp"
	"github.com/gorewood/sprout/internal/output"
	"github.com/gorewood/sprout/internal/scaffold"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run sprout as a Model Context Protocol (MCP) server over stdio.

This lets any MCP-capable agent list the configured templates and create
projects from them without the interactive menu.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "sprout": {
        "command": "sprout",
        "args": ["serve"]
      }
    }
  }

Available tools: list_templates, create_project`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fetcher, err := degit.New(degit.OptionsFromEnv())
			if err != nil {
				return output.NewSystemErrorWithCause("setting up fetcher", err)
			}
			// stdin and stdout carry the protocol: git gets no input and
			// writes to stderr.
			creator := &scaffold.Creator{
				Fetcher: fetcher,
				VCS:     git.NewRunner(os.Stderr, os.Stderr),
			}
			server := sproutmcp.NewServer(buildVersion(), loadConfig, creator)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

// loadConfig loads the user config, writing the default on first use.
func loadConfig() (*config.Config, error) {
	res, err := config.Get()
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}
