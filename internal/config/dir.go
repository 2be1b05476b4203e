// Package config provides the configuration directory and config file for rpexport.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the rpexport configuration directory.
//
// Resolution:
//   - $RPEXPORT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/rpexport if set (respects XDG on any platform)
//   - %AppData%/rpexport on Windows
//   - ~/.config/rpexport on macOS and Linux
func Dir() string {
	if dir := os.Getenv("RPEXPORT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rpexport")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "rpexport")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rpexport")
}
