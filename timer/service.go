package timer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Tick runs one iteration of a poller's action.
type Tick func() error

// Setup prepares a poller inside its own goroutine and returns its Tick.
// Whatever Setup allocates belongs to that goroutine alone. Setup is not
// called before Release.
type Setup func() (Tick, error)

// Stats is a point-in-time view of the service.
type Stats struct {
	Pollers  int    // Registered pollers
	Running  int    // Pollers whose setup succeeded
	Ticks    uint64 // Actions run, across all pollers
	Failures uint64 // Actions that returned an error
}

// Service owns every poller worker for the life of the process.
// It owns: ID generation, worker goroutines, tick accounting.
// Workers are never cancelled. Each one waits for Release before calling its
// Setup, then runs action, sleep, action, sleep... without drift compensation.
type Service struct {
	log zerolog.Logger

	mu      sync.Mutex
	pollers map[int]*entry
	nextID  int

	release     chan struct{}
	releaseOnce sync.Once
}

type entry struct {
	interval time.Duration
	running  atomic.Bool
	ticks    atomic.Uint64
	failures atomic.Uint64
}

// NewService creates a poller service that logs tick failures to log.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log:     log,
		pollers: make(map[int]*entry),
		release: make(chan struct{}),
	}
}

// Every starts a detached worker that, once released, calls setup once and
// then runs the returned Tick every interval. It returns the poller ID once the worker
// goroutine is running.
func (s *Service) Every(interval time.Duration, setup Setup) int {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	e := &entry{interval: interval}
	s.pollers[id] = e
	s.mu.Unlock()

	started := make(chan struct{})
	go s.run(id, e, setup, started)
	<-started

	return id
}

// Release lets every worker, current and future, start ticking.
func (s *Service) Release() {
	s.releaseOnce.Do(func() { close(s.release) })
}

func (s *Service) run(id int, e *entry, setup Setup, started chan<- struct{}) {
	close(started)

	log := s.log.With().Int("poller", id).Dur("interval", e.interval).Logger()

	<-s.release

	tick, err := setup()
	if err != nil {
		log.Error().Err(err).Msg("poller setup failed")
		return
	}
	e.running.Store(true)

	for {
		e.ticks.Add(1)
		if err := tick(); err != nil {
			e.failures.Add(1)
			log.Error().Err(err).Msg("poll action failed")
		}
		time.Sleep(e.interval)
	}
}

// Stats returns counters aggregated over all pollers.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Pollers: len(s.pollers)}
	for _, e := range s.pollers {
		if e.running.Load() {
			st.Running++
		}
		st.Ticks += e.ticks.Load()
		st.Failures += e.failures.Load()
	}
	return st
}
