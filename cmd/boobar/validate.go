package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/drake/boobar/config"
	"github.com/drake/boobar/lua"
	"github.com/drake/boobar/session"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config without starting any pollers",
	Args:  cobra.NoArgs,
	RunE:  validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	s, cfg, err := session.LoadWithOptions(configPath, session.Options{Validate: true})
	if err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	defer s.Close()

	printSummary(cmd.OutOrStdout(), configPath, s.WindowNames(), cfg, s.Polls())
	return nil
}

func printSummary(w io.Writer, path string, windows []string, cfg config.Config, polls []lua.PollRequest) {
	fmt.Fprintln(w, color.Green.Sprint("Valid config: ")+path)

	fmt.Fprintf(w, "  windows: %d", len(windows))
	if len(windows) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(windows, ", "))
	}
	fmt.Fprintln(w)
	for _, name := range windows {
		win := cfg.Windows[name]
		width, height := win.Size()
		fmt.Fprintf(w, "    %s: %dx%d %s\n", color.Cyan.Sprint(name), width, height, win.Type())
	}

	fmt.Fprintf(w, "  custom:  %d\n", len(cfg.Customs))
	fmt.Fprintf(w, "  pollers: %d\n", len(polls))
	for _, p := range polls {
		fmt.Fprintf(w, "    every %s\n", p.Interval)
	}

	for _, u := range cfg.Unresolved() {
		fmt.Fprintln(w, color.Yellow.Sprintf("warning: window %q %s %q renders empty", u.Window, u.Slot, u.Ref))
	}
}
