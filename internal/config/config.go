package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for the export pipeline. All fields are optional;
// command-line flags override anything set here.
type Config struct {
	// OutputDir is where rendered Markdown files are written.
	OutputDir string `yaml:"output_dir"`

	// CacheDir is where fetched JSON (mesocycles.json, exercises.json) is cached.
	CacheDir string `yaml:"cache_dir"`

	// Headers is the path to the request headers file for the RP API.
	Headers string `yaml:"headers"`

	// Frontmatter is the path to the front-matter template file.
	Frontmatter string `yaml:"frontmatter"`

	// Header is the path to a fixed header block inserted after the front matter.
	Header string `yaml:"header"`

	// MuscleGroups is the path to the muscle-group mapping JSON file.
	MuscleGroups string `yaml:"muscle_groups"`

	// Strict aborts the export on the first mesocycle failure.
	Strict bool `yaml:"strict"`

	// SaveJSON writes the raw mesocycle JSON next to each Markdown file.
	SaveJSON bool `yaml:"save_json"`
}

// Default returns the built-in configuration defaults.
// CacheDir follows the original tool's convention of a conf/ directory
// relative to the working directory, so cache files stay next to the data
// they describe and are easy to inspect or delete.
func Default() *Config {
	return &Config{
		OutputDir: "output",
		CacheDir:  "conf",
	}
}

// Load reads the config file at path and merges it over the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = Default().OutputDir
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = Default().CacheDir
	}

	return cfg, nil
}

// DefaultPath returns the path of the config file in the config directory.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
