// Package main provides the entry point for the rpexport CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/N4M3Z/rpstrength-export/internal/config"
	"github.com/N4M3Z/rpstrength-export/internal/export"
	"github.com/N4M3Z/rpstrength-export/internal/output"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var common commonFlags
	var outFlag string
	var frontmatterFlag string
	var headerFlag string
	var muscleGroupsFlag string
	var selectFlag string
	var strictFlag bool
	var saveJSONFlag bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export mesocycles to Markdown notes",
		Long: `Export mesocycle history as Markdown notes with YAML front matter.

Fetched JSON is cached, so repeat runs reuse it and work offline.
Filenames are stable slugs of the mesocycle name; re-exports overwrite
the previous note instead of accumulating duplicates.

Examples:
  rpexport export --headers headers.txt                  # Export everything
  rpexport export --headers headers.txt --select 0,2-4   # Export by index position
  rpexport export --offline --out ./notes/               # Re-render from cache only
  rpexport export --headers headers.txt --strict         # Abort on the first failure`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, &common, exportOptions{
				out:          outFlag,
				frontmatter:  frontmatterFlag,
				header:       headerFlag,
				muscleGroups: muscleGroupsFlag,
				selection:    selectFlag,
				strict:       strictFlag,
				saveJSON:     saveJSONFlag,
			})
		},
	}

	common.register(cmd)
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory for Markdown notes (default: output)")
	cmd.Flags().StringVar(&frontmatterFlag, "frontmatter", "", "Front-matter template file (default: built-in template)")
	cmd.Flags().StringVar(&headerFlag, "header", "", "File with a fixed header block inserted after the front matter")
	cmd.Flags().StringVar(&muscleGroupsFlag, "muscle-groups", "", "Muscle-group mapping JSON file (default: built-in ids 1-12)")
	cmd.Flags().StringVar(&selectFlag, "select", "", "Index positions to export, e.g. 0,2-4 (default: all)")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "Abort on the first failure; nothing is written")
	cmd.Flags().BoolVar(&saveJSONFlag, "save-json", false, "Write each mesocycle's raw JSON next to its note")

	return cmd
}

// exportOptions are the export-specific flag values.
type exportOptions struct {
	out          string
	frontmatter  string
	header       string
	muscleGroups string
	selection    string
	strict       bool
	saveJSON     bool
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, common *commonFlags, opts exportOptions) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	cfg, err := common.loadConfig()
	if err != nil {
		printer.Error(err)
		return err
	}
	mergeExportOptions(cfg, opts)

	runner, err := common.buildRunner(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := applyExportOptions(runner, cfg, opts); err != nil {
		printer.Error(err)
		return err
	}

	report, err := runner.Run(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}

	printReport(printer, runner.OutDir, report)
	return nil
}

// mergeExportOptions overlays export flags onto the config. Flags win.
func mergeExportOptions(cfg *config.Config, opts exportOptions) {
	if opts.out != "" {
		cfg.OutputDir = opts.out
	}
	if opts.frontmatter != "" {
		cfg.Frontmatter = opts.frontmatter
	}
	if opts.header != "" {
		cfg.Header = opts.header
	}
	if opts.muscleGroups != "" {
		cfg.MuscleGroups = opts.muscleGroups
	}
	if opts.strict {
		cfg.Strict = true
	}
	if opts.saveJSON {
		cfg.SaveJSON = true
	}
}

// applyExportOptions finishes runner setup from the merged config: template,
// header block, selection, and mode switches.
func applyExportOptions(runner *export.Runner, cfg *config.Config, opts exportOptions) error {
	runner.OutDir = cfg.OutputDir
	runner.Strict = cfg.Strict
	runner.SaveJSON = cfg.SaveJSON

	tmpl, err := export.LoadTemplate(cfg.Frontmatter)
	if err != nil {
		return output.NewUserError(err.Error())
	}
	runner.Template = tmpl

	if cfg.Header != "" {
		data, err := os.ReadFile(cfg.Header)
		if err != nil {
			return output.NewUserError(fmt.Sprintf("reading header file: %v", err))
		}
		runner.Header = string(data)
	}

	if opts.selection != "" {
		selection, err := parseSelection(opts.selection)
		if err != nil {
			return output.NewUserError(err.Error())
		}
		runner.Selection = selection
	}

	return nil
}

// printReport renders the run report for humans or as JSON.
func printReport(printer *output.Printer, outDir string, report *export.Report) {
	if printer.IsJSON() {
		printer.Success(map[string]any{
			"output_dir": outDir,
			"written":    report.Written,
			"skipped":    report.Skipped,
			"failed":     report.Failed,
			"failures":   report.Failures,
			"warnings":   report.Warnings,
		})
		return
	}

	for _, warning := range report.Warnings {
		printer.Warn("%s", warning)
	}
	for _, failure := range report.Failures {
		printer.Warn("failed %s: %s", failure.Name, failure.Reason)
	}

	printer.Success(map[string]any{
		"message": fmt.Sprintf("Exported %d mesocycle(s) to %s (%d skipped, %d failed)",
			report.Written, outDir, report.Skipped, report.Failed),
	})
}
