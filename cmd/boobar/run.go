package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/drake/boobar/debug"
	"github.com/drake/boobar/session"
	"github.com/drake/boobar/ui"
)

var runCmd = &cobra.Command{
	Use:   "run WINDOW",
	Short: "Open a configured window",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommand,
}

// noSuchWindow is returned when run names a window the config does not declare.
type noSuchWindow string

func (n noSuchWindow) Error() string { return "No such window: " + string(n) }

func runCommand(cmd *cobra.Command, args []string) error {
	name := args[0]

	s, _, err := session.Load(configPath)
	if err != nil {
		return err
	}
	defer s.Close()

	window, ok := s.LookupWindow(name)
	if !ok {
		return noSuchWindow(name)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.NewMonitor(ctx, s, log.Logger).Start()

	log.Debug().Str("window", name).Int("pollers", len(s.Polls())).Msg("opening window")
	return ui.Run(name, window, s.Config())
}
