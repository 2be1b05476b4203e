// Package mcp provides a Model Context Protocol server for rpexport.
// It exposes the mesocycle index, rendering, and export pipeline as MCP tools
// that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/N4M3Z/rpstrength-export/internal/export"
)

// RunnerFactory builds a fresh export runner per tool call. Runners
// accumulate per-run state (resolver warnings), so they are never shared
// between calls.
type RunnerFactory func() *export.Runner

// NewServer creates an MCP server with all rpexport tools registered.
func NewServer(version string, newRunner RunnerFactory) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "rpexport",
		Version: version,
	}, nil)
	registerTools(server, newRunner)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that touch nothing local.
// The index and catalog may still be fetched over the network.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// writeAnnotations returns annotations for the export tool, which overwrites
// notes in place but never deletes anything.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all rpexport tools to the server.
func registerTools(server *mcp.Server, newRunner RunnerFactory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "mesocycles",
		Description: "List the mesocycle index: key, name, status, and date range for every training block on the account.",
		Annotations: readOnlyAnnotations(),
	}, handleMesocycles(newRunner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render a single mesocycle to Markdown by its key and return the note text without writing any file.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(newRunner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export",
		Description: "Run the full export: fetch or reuse cached data, render every selected mesocycle, and write Markdown notes to the output directory.",
		Annotations: writeAnnotations(),
	}, handleExport(newRunner))
}
