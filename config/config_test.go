package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not consulted on windows")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "boobar"), Dir())
	assert.Equal(t, filepath.Join(dir, "boobar", "config.lua"), DefaultFile())
}

func TestExpandHome(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home lookup reads USERPROFILE on windows")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", "boobar", "config.lua"), ExpandHome("~/.config/boobar/config.lua"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "~other/config.lua", ExpandHome("~other/config.lua"))
	assert.Equal(t, "/etc/boobar/config.lua", ExpandHome("/etc/boobar/config.lua"))
	assert.Equal(t, "config.lua", ExpandHome("config.lua"))
}
