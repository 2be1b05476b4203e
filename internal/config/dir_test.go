package config

import (
	"path/filepath"
	"testing"
)

func TestDirExplicitOverride(t *testing.T) {
	t.Setenv("RPEXPORT_CONFIG_HOME", "/custom/rpexport")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got := Dir(); got != "/custom/rpexport" {
		t.Errorf("Dir() = %q, want /custom/rpexport", got)
	}
}

func TestDirXDG(t *testing.T) {
	t.Setenv("RPEXPORT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	want := filepath.Join("/xdg", "rpexport")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDirHomeFallback(t *testing.T) {
	t.Setenv("RPEXPORT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	got := Dir()
	if got == "" {
		t.Skip("no home directory in test environment")
	}
	if filepath.Base(got) != "rpexport" {
		t.Errorf("Dir() = %q, want a path ending in rpexport", got)
	}
}
