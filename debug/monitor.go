// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/drake/boobar/session"
)

// Enabled returns true if debug mode is active (BOOBAR_DEBUG=1).
func Enabled() bool {
	return os.Getenv("BOOBAR_DEBUG") == "1"
}

// StatsSource is anything that can report session statistics.
type StatsSource interface {
	Stats() session.Stats
}

// Monitor periodically logs session statistics when debug mode is enabled.
type Monitor struct {
	source   StatsSource
	interval time.Duration
	ctx      context.Context
	logger   zerolog.Logger
}

// NewMonitor creates a new monitor for the given session.
// If debug mode is not enabled, returns nil.
func NewMonitor(ctx context.Context, s StatsSource, logger zerolog.Logger) *Monitor {
	if !Enabled() {
		return nil
	}
	return newMonitor(ctx, s, logger, 5*time.Second)
}

func newMonitor(ctx context.Context, s StatsSource, logger zerolog.Logger, interval time.Duration) *Monitor {
	return &Monitor{
		source:   s,
		interval: interval,
		ctx:      ctx,
		logger:   logger,
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Debug().Msg("monitor started")

	for {
		select {
		case <-m.ctx.Done():
			m.logger.Debug().Msg("monitor stopped")
			return
		case <-ticker.C:
			m.logStats()
		}
	}
}

func (m *Monitor) logStats() {
	s := m.source.Stats()

	m.logger.Debug().
		Int("pollers", s.Pollers.Pollers).
		Int("running", s.Pollers.Running).
		Uint64("ticks", s.Pollers.Ticks).
		Uint64("failures", s.Pollers.Failures).
		Int("boo_keys", s.BooKeys).
		Int("goroutines", s.Goroutines).
		Msg("stats")
}
