// Package main provides the entry point for the rpexport CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/N4M3Z/rpstrength-export/internal/cache"
	"github.com/N4M3Z/rpstrength-export/internal/config"
	"github.com/N4M3Z/rpstrength-export/internal/export"
	"github.com/N4M3Z/rpstrength-export/internal/output"
)

// newCacheCmd creates the cache command with its subcommands.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the JSON cache",
		Long: `Inspect or clear the cached API responses.

The cache holds the mesocycle index and the exercise catalog. Clearing it
forces the next run to fetch fresh data.`,
	}

	cmd.AddCommand(newCacheStatusCmd())
	cmd.AddCommand(newCacheClearCmd())
	return cmd
}

// newCacheStatusCmd creates the cache status subcommand.
func newCacheStatusCmd() *cobra.Command {
	var configFlag string
	var cacheDirFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show cached files and their ages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

			store, err := openStore(configFlag, cacheDirFlag)
			if err != nil {
				printer.Error(err)
				return err
			}

			entries := store.Status(export.IndexCacheName, export.CatalogCacheName)
			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{"dir": store.Dir(), "entries": entries})
			}

			printer.Section("Cache")
			printer.KeyValue("Directory", store.Dir())
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				modified := ""
				if entry.Exists {
					modified = entry.Modified.Format("2006-01-02 15:04:05")
				}
				rows = append(rows, []string{
					entry.Name, strconv.FormatBool(entry.Exists), strconv.FormatInt(entry.Size, 10), modified,
				})
			}
			printer.Table([]string{"FILE", "CACHED", "BYTES", "MODIFIED"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&configFlag, "config", "", "Config file (default: "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&cacheDirFlag, "cache-dir", "", "Directory for cached JSON (default: conf)")
	return cmd
}

// newCacheClearCmd creates the cache clear subcommand.
func newCacheClearCmd() *cobra.Command {
	var configFlag string
	var cacheDirFlag string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete cached files so the next run fetches fresh data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

			store, err := openStore(configFlag, cacheDirFlag)
			if err != nil {
				printer.Error(err)
				return err
			}

			if err := store.Clear(export.IndexCacheName, export.CatalogCacheName); err != nil {
				sysErr := output.NewSystemErrorWithCause("clearing cache", err)
				printer.Error(sysErr)
				return sysErr
			}

			return printer.Success(map[string]any{
				"message": "Cache cleared: " + store.Dir(),
				"dir":     store.Dir(),
			})
		},
	}

	cmd.Flags().StringVar(&configFlag, "config", "", "Config file (default: "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&cacheDirFlag, "cache-dir", "", "Directory for cached JSON (default: conf)")
	return cmd
}

// openStore resolves the cache directory from flags and config.
func openStore(configPath, cacheDir string) (*cache.Store, error) {
	if cacheDir != "" {
		return cache.New(cacheDir), nil
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}
	return cache.New(cfg.CacheDir), nil
}
