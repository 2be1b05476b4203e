// Package main provides the entry point for the rpexport CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/N4M3Z/rpstrength-export/internal/export"
	rpmcp "github.com/N4M3Z/rpstrength-export/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var common commonFlags
	var outFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run rpexport as a Model Context Protocol (MCP) server over stdio.

This exposes the mesocycle index, rendering, and export pipeline as MCP
tools that any MCP-capable agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "rpexport": {
        "command": "rpexport",
        "args": ["serve", "--headers", "/path/to/headers.txt"]
      }
    }
  }

Available tools: mesocycles, render, export`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := common.loadConfig()
			if err != nil {
				return err
			}
			if outFlag != "" {
				cfg.OutputDir = outFlag
			}

			// Probe the configuration once at startup so misconfiguration
			// surfaces here, not on the first tool call.
			if _, err := common.buildRunner(cfg); err != nil {
				return err
			}

			factory := func() *export.Runner {
				runner, err := common.buildRunner(cfg)
				if err != nil {
					// Config was valid at startup; a failure here means the
					// files changed underneath us.
					return &export.Runner{}
				}
				return runner
			}

			server := rpmcp.NewServer(buildVersion(), factory)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	common.register(cmd)
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory for the export tool (default: output)")
	return cmd
}
