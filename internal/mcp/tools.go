package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/N4M3Z/rpstrength-export/internal/export"
)

// --- Shared types ---

// MesocycleSummary is one index entry, simplified for output.
type MesocycleSummary struct {
	Key       string `json:"key"                  jsonschema:"mesocycle key used by the render tool"`
	Name      string `json:"name"                 jsonschema:"mesocycle display name"`
	Status    string `json:"status,omitempty"     jsonschema:"training status"`
	StartDate string `json:"start_date,omitempty" jsonschema:"first training day"`
	EndDate   string `json:"end_date,omitempty"   jsonschema:"last training day"`
	Weeks     int    `json:"weeks,omitempty"      jsonschema:"week count when detail is embedded"`
}

// --- Mesocycles tool ---

// MesocyclesInput is the input for the mesocycles tool (no parameters needed).
type MesocyclesInput struct{}

// MesocyclesOutput is the output for the mesocycles tool.
type MesocyclesOutput struct {
	Count      int                `json:"count"      jsonschema:"number of mesocycles in the index"`
	Mesocycles []MesocycleSummary `json:"mesocycles" jsonschema:"index entries in account order"`
}

func handleMesocycles(newRunner RunnerFactory) mcp.ToolHandlerFor[MesocyclesInput, MesocyclesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ MesocyclesInput) (*mcp.CallToolResult, MesocyclesOutput, error) {
		index, err := newRunner().LoadIndex(ctx)
		if err != nil {
			return nil, MesocyclesOutput{}, fmt.Errorf("loading mesocycle index: %w", err)
		}

		summaries := make([]MesocycleSummary, 0, len(index))
		for _, m := range index {
			summaries = append(summaries, MesocycleSummary{
				Key:       m.Key,
				Name:      m.Name,
				Status:    m.Status,
				StartDate: m.StartDate,
				EndDate:   m.EndDate,
				Weeks:     len(m.Weeks),
			})
		}

		return nil, MesocyclesOutput{Count: len(summaries), Mesocycles: summaries}, nil
	}
}

// --- Render tool ---

// RenderInput is the input for the render tool.
type RenderInput struct {
	Key string `json:"key" jsonschema:"mesocycle key from the mesocycles tool"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	Key      string `json:"key"      jsonschema:"mesocycle key that was rendered"`
	Markdown string `json:"markdown" jsonschema:"complete Markdown note text"`
}

func handleRender(newRunner RunnerFactory) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		if input.Key == "" {
			return nil, RenderOutput{}, fmt.Errorf("key is required; list keys with the mesocycles tool")
		}

		content, err := newRunner().RenderMesocycle(ctx, input.Key)
		if err != nil {
			return nil, RenderOutput{}, fmt.Errorf("rendering mesocycle %s: %w", input.Key, err)
		}

		return nil, RenderOutput{Key: input.Key, Markdown: content}, nil
	}
}

// --- Export tool ---

// ExportInput is the input for the export tool.
type ExportInput struct {
	Selection []int `json:"selection,omitempty" jsonschema:"index positions to export; omit for all"`
	Strict    bool  `json:"strict,omitempty"    jsonschema:"abort on the first failure instead of continuing"`
	SaveJSON  bool  `json:"save_json,omitempty" jsonschema:"write each mesocycle's raw JSON next to its note"`
}

// ExportOutput is the output for the export tool.
type ExportOutput struct {
	OutputDir string         `json:"output_dir"         jsonschema:"directory the notes were written to"`
	Report    *export.Report `json:"report"             jsonschema:"written, skipped, and failed counts with details"`
}

func handleExport(newRunner RunnerFactory) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		runner := newRunner()
		runner.Selection = input.Selection
		runner.Strict = input.Strict
		runner.SaveJSON = input.SaveJSON

		report, err := runner.Run(ctx)
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("export failed: %w", err)
		}

		return nil, ExportOutput{OutputDir: runner.OutDir, Report: report}, nil
	}
}
