package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheStatusCommand(t *testing.T) {
	t.Setenv("RPEXPORT_CONFIG_HOME", t.TempDir())
	cacheDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(cacheDir, "mesocycles.json"), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := runCommand(t, "cache", "status", "--cache-dir", cacheDir)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}

	for _, want := range []string{"Cache", "Directory", "mesocycles.json", "exercises.json", "true", "false"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCacheClearCommand(t *testing.T) {
	t.Setenv("RPEXPORT_CONFIG_HOME", t.TempDir())
	cacheDir := t.TempDir()
	path := filepath.Join(cacheDir, "mesocycles.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := runCommand(t, "cache", "clear", "--cache-dir", cacheDir)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}
	if !strings.Contains(got, "Cache cleared") {
		t.Errorf("output = %q", got)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("cached file still present after clear")
	}
}
