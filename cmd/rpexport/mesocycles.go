// Package main provides the entry point for the rpexport CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/N4M3Z/rpstrength-export/internal/meso"
	"github.com/N4M3Z/rpstrength-export/internal/output"
)

// newMesocyclesCmd creates the mesocycles command.
func newMesocyclesCmd() *cobra.Command {
	var common commonFlags

	cmd := &cobra.Command{
		Use:   "mesocycles",
		Short: "List the mesocycle index",
		Long: `List every mesocycle on the account with its index position, key, name,
status, and date range. Positions feed the export --select flag.

Examples:
  rpexport mesocycles --headers headers.txt
  rpexport mesocycles --offline --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMesocycles(cmd, &common)
		},
	}

	common.register(cmd)
	return cmd
}

// runMesocycles executes the mesocycles command.
func runMesocycles(cmd *cobra.Command, common *commonFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	cfg, err := common.loadConfig()
	if err != nil {
		printer.Error(err)
		return err
	}
	runner, err := common.buildRunner(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	index, err := runner.LoadIndex(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(index)
	}

	rows := make([][]string, 0, len(index))
	for i, m := range index {
		rows = append(rows, []string{
			strconv.Itoa(i), m.Key, m.Name, m.Status, dateRange(m),
		})
	}
	printer.Table([]string{"#", "KEY", "NAME", "STATUS", "DATES"}, rows)
	return nil
}

// dateRange formats a mesocycle's start and end dates for table output.
func dateRange(m *meso.Mesocycle) string {
	switch {
	case m.StartDate == "" && m.EndDate == "":
		return ""
	case m.EndDate == "":
		return m.StartDate
	default:
		return m.StartDate + " to " + m.EndDate
	}
}
