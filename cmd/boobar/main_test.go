package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/boobar/config"
	"github.com/drake/boobar/lua"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.lua")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "boobar version "+version)
}

func TestValidate(t *testing.T) {
	path := writeConfig(t, `
		windows = { main = { width = "800", win_type = "dock", left_contents = "custom.clock", right_contents = "custom.nope" } }
		custom = { clock = { type = "label", content = "12:00" } }
		poll("function() end", "1s")
	`)

	out, err := execute(t, "validate", "--config", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "windows: 1")
	assert.Contains(t, out, "800x60")
	assert.Contains(t, out, "pollers: 1")
	assert.Contains(t, out, "custom.nope")
}

func TestValidateFails(t *testing.T) {
	path := writeConfig(t, `poll("function() end", "soon")`)

	_, err := execute(t, "validate", "--config", path, "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "invalid duration format")
}

func TestRunUnknownWindow(t *testing.T) {
	path := writeConfig(t, `windows = { main = {} }`)

	_, err := execute(t, "run", "nope", "--config", path, "--log-level", "error")
	require.Error(t, err)
	assert.Equal(t, "No such window: nope", err.Error())
}

func TestPrintSummaryNoWindows(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, "cfg.lua", nil, config.Config{}, []lua.PollRequest{{Source: "f", Interval: 500 * time.Millisecond}})

	assert.Contains(t, out.String(), "windows: 0\n")
	assert.Contains(t, out.String(), "every 500ms")
	assert.NotContains(t, out.String(), "warning")
}
