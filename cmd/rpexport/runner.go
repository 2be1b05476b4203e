// Package main provides the entry point for the rpexport CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/N4M3Z/rpstrength-export/internal/cache"
	"github.com/N4M3Z/rpstrength-export/internal/config"
	"github.com/N4M3Z/rpstrength-export/internal/export"
	"github.com/N4M3Z/rpstrength-export/internal/muscles"
	"github.com/N4M3Z/rpstrength-export/internal/output"
	"github.com/N4M3Z/rpstrength-export/internal/rpapi"
)

// commonFlags are the data-source flags shared by every command that touches
// the RP API or its cache.
type commonFlags struct {
	config    string
	headers   string
	cacheDir  string
	index     string
	exercises string
	offline   bool
}

// register adds the shared flags to a command.
func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "Config file (default: "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&f.headers, "headers", "", "Request headers file for the RP API (Name: value lines)")
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", "Directory for cached JSON (default: conf)")
	cmd.Flags().StringVar(&f.index, "index", "", "Pre-supplied mesocycle index JSON (bypasses cache and network)")
	cmd.Flags().StringVar(&f.exercises, "exercises", "", "Pre-supplied exercise catalog JSON (bypasses cache and network)")
	cmd.Flags().BoolVar(&f.offline, "offline", false, "Never touch the network; use cached or pre-supplied data only")
}

// loadConfig loads the config file, from --config when set, the default
// location otherwise.
func (f *commonFlags) loadConfig() (*config.Config, error) {
	path := f.config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}
	return cfg, nil
}

// buildRunner assembles an export runner from flags merged over the config
// file. Flags win.
func (f *commonFlags) buildRunner(cfg *config.Config) (*export.Runner, error) {
	headersPath := firstOf(f.headers, cfg.Headers)
	cacheDir := firstOf(f.cacheDir, cfg.CacheDir)

	var fetcher rpapi.Fetcher
	if !f.offline && headersPath != "" {
		headers, err := rpapi.LoadHeaders(headersPath)
		if err != nil {
			return nil, output.NewUserError(err.Error())
		}
		fetcher = rpapi.NewClient(headers)
	}
	if !f.offline && headersPath == "" && (f.index == "" || f.exercises == "") {
		return nil, output.NewUserError(
			"no headers file configured; pass --headers, set headers in the config file, or run --offline with cached data")
	}

	mapping, err := loadMuscleMap(cfg.MuscleGroups)
	if err != nil {
		return nil, err
	}

	return &export.Runner{
		Cache:       cache.New(cacheDir),
		Fetcher:     fetcher,
		Resolver:    muscles.NewResolver(mapping),
		IndexPath:   f.index,
		CatalogPath: f.exercises,
		OutDir:      cfg.OutputDir,
	}, nil
}

// loadMuscleMap loads the muscle-group mapping file, or nil for the built-in
// default.
func loadMuscleMap(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	mapping, err := muscles.LoadMap(path)
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}
	return mapping, nil
}

// firstOf returns the first non-empty string.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
