package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir returns the boobar configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "boobar")
}

// DefaultFile returns the path to config.lua
func DefaultFile() string {
	return filepath.Join(Dir(), "config.lua")
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory,
// for config paths that reached us without shell expansion. Other paths, and
// every path when the home directory is unknown, are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
