// Package main provides the entry point for the rpexport CLI.
package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/N4M3Z/rpstrength-export/internal/output"
)

// newExercisesCmd creates the exercises command.
func newExercisesCmd() *cobra.Command {
	var common commonFlags
	var filterFlag string

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "List the exercise catalog",
		Long: `List the exercise catalog: id, name, equipment, and muscle groups.
Useful for diagnosing unresolved exercise references in an export.

Examples:
  rpexport exercises --headers headers.txt
  rpexport exercises --offline --filter bench`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExercises(cmd, &common, filterFlag)
		},
	}

	common.register(cmd)
	cmd.Flags().StringVar(&filterFlag, "filter", "", "Only list exercises whose name contains this substring")
	return cmd
}

// runExercises executes the exercises command.
func runExercises(cmd *cobra.Command, common *commonFlags, filter string) error {
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

	catalog, err := runner.LoadCatalog(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}

	ids := make([]int, 0, len(catalog))
	for id, ex := range catalog {
		if filter != "" && !strings.Contains(strings.ToLower(ex.Name), strings.ToLower(filter)) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	if printer.IsJSON() {
		out := make([]any, 0, len(ids))
		for _, id := range ids {
			out = append(out, catalog[id])
		}
		return printer.WriteJSON(out)
	}

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		ex := catalog[id]
		rows = append(rows, []string{
			strconv.Itoa(id), ex.Name, ex.Equipment(), strings.Join(ex.GroupIDs(), ", "),
		})
	}
	printer.Table([]string{"ID", "NAME", "EQUIPMENT", "MUSCLE GROUPS"}, rows)
	return nil
}
