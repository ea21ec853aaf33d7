package session

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/drake/boobar/config"
	"github.com/drake/boobar/lua"
	"github.com/drake/boobar/timer"
)

// Ensure Session implements lua.Host at compile time
var _ lua.Host = (*Session)(nil)

// Options tunes a load.
type Options struct {
	// Validate evaluates the config and checks every poll call, but starts no
	// poller workers.
	Validate bool

	// Logger receives poller failures. Defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Session is the runtime handle of a loaded config.
//
// It owns the main interpreter and every poller worker. Windows and customs
// are frozen once Load returns and are read without locking; boo is the only
// state pollers write and sits behind its own mutex.
type Session struct {
	path string
	opts Options
	log  zerolog.Logger

	// Components
	engine *lua.Engine
	timer  *timer.Service

	// Frozen after load
	windows map[string]config.Window
	customs map[string]config.Custom

	booMu sync.Mutex
	boo   map[string]any

	pollMu sync.Mutex
	polls  []lua.PollRequest
}

// Stats is a snapshot of runtime counters for diagnostics.
type Stats struct {
	Pollers    timer.Stats
	BooKeys    int
	Goroutines int
}

// Load reads, evaluates and projects the config at path.
func Load(path string) (*Session, config.Config, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions is Load with explicit options. A leading "~" in path is
// expanded to the home directory.
//
// Pollers registered by the script are started while it runs but do not tick
// until the load succeeds. On failure they are abandoned, parked, for the
// rest of the process.
func LoadWithOptions(path string, opts Options) (*Session, config.Config, error) {
	path = config.ExpandHome(path)
	s := newSession(path, opts)

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, config.Config{}, &IOError{Path: path, Err: err}
	}

	doc, err := s.evaluate(code)
	if err != nil {
		s.Close()
		return nil, config.Config{}, &ScriptError{Path: path, Err: err}
	}

	cfg := config.Project(doc)
	s.ready(cfg)

	s.log.Debug().
		Str("path", path).
		Int("windows", len(cfg.Windows)).
		Int("custom", len(cfg.Customs)).
		Int("pollers", len(s.Polls())).
		Msg("config loaded")

	return s, cfg.Clone(), nil
}

func newSession(path string, opts Options) *Session {
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Session{
		path:    path,
		opts:    opts,
		log:     logger,
		timer:   timer.NewService(logger),
		windows: make(map[string]config.Window),
		customs: make(map[string]config.Custom),
		boo:     make(map[string]any),
	}
}

// evaluate turns the file contents into a document, running Lua for .lua
// files (and anything unrecognized) and decoding the static formats.
func (s *Session) evaluate(code []byte) (config.Document, error) {
	ext := strings.ToLower(filepath.Ext(s.path))
	if decode, ok := decoders[ext]; ok {
		return decode(code)
	}

	s.engine = lua.NewEngine(s)
	if err := s.engine.Init(); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(s.path)
	if err != nil {
		absPath = s.path
	}
	if err := s.engine.DoFileString(absPath, string(code)); err != nil {
		return nil, err
	}

	return s.engine.Document(), nil
}

// ready freezes the projection, seeds boo and lets pollers start ticking.
func (s *Session) ready(cfg config.Config) {
	s.windows = cfg.Windows
	s.customs = cfg.Customs

	s.booMu.Lock()
	for k, v := range cfg.Boo {
		s.boo[k] = config.CloneValue(v)
	}
	s.booMu.Unlock()

	s.timer.Release()
}

// Close releases the main interpreter. Pollers keep running.
func (s *Session) Close() {
	if s.engine != nil {
		s.engine.Close()
		s.engine = nil
	}
}

// Path returns the file the session was loaded from.
func (s *Session) Path() string { return s.path }

// --- Lookups ---

// LookupWindow returns the window declared under name.
func (s *Session) LookupWindow(name string) (config.Window, bool) {
	w, ok := s.windows[name]
	return w, ok
}

// LookupCustom returns the custom widget declared under name.
func (s *Session) LookupCustom(name string) (config.Custom, bool) {
	c, ok := s.customs[name]
	return c, ok
}

// Windows returns a copy of every declared window.
func (s *Session) Windows() map[string]config.Window {
	out := make(map[string]config.Window, len(s.windows))
	for k, v := range s.windows {
		out[k] = v
	}
	return out
}

// WindowNames returns the declared window names, sorted.
func (s *Session) WindowNames() []string {
	names := make([]string, 0, len(s.windows))
	for name := range s.windows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Customs returns a copy of every declared custom widget.
func (s *Session) Customs() map[string]config.Custom {
	out := make(map[string]config.Custom, len(s.customs))
	for k, v := range s.customs {
		out[k] = v
	}
	return out
}

// Config returns a snapshot of the typed config with boo as it is now.
func (s *Session) Config() config.Config {
	cfg := config.Config{
		Windows: s.Windows(),
		Customs: s.Customs(),
		Boo:     make(map[string]any),
	}

	s.booMu.Lock()
	for k, v := range s.boo {
		cfg.Boo[k] = config.CloneValue(v)
	}
	s.booMu.Unlock()

	return cfg
}

// --- Host Implementation ---

// BooGet returns a copy of the value stored under key, or nil.
func (s *Session) BooGet(key string) any {
	s.booMu.Lock()
	defer s.booMu.Unlock()
	return config.CloneValue(s.boo[key])
}

// BooSet stores a copy of value under key. A nil value deletes the key.
func (s *Session) BooSet(key string, value any) {
	value = config.CloneValue(value)

	s.booMu.Lock()
	defer s.booMu.Unlock()
	if value == nil {
		delete(s.boo, key)
		return
	}
	s.boo[key] = value
}

// Poll registers a poller. Outside validate mode its worker is running by
// the time Poll returns.
func (s *Session) Poll(req lua.PollRequest) error {
	s.pollMu.Lock()
	s.polls = append(s.polls, req)
	s.pollMu.Unlock()

	if s.opts.Validate {
		return nil
	}

	s.timer.Every(req.Interval, func() (timer.Tick, error) {
		w, err := req.NewWorker(s)
		if err != nil {
			return nil, err
		}
		return w.Tick, nil
	})
	return nil
}

// Logger returns the logger script output and poller failures go to.
func (s *Session) Logger() zerolog.Logger { return s.log }

// Polls returns the poll registrations made by the script, in call order.
func (s *Session) Polls() []lua.PollRequest {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	out := make([]lua.PollRequest, len(s.polls))
	copy(out, s.polls)
	return out
}

// Stats returns runtime counters.
func (s *Session) Stats() Stats {
	s.booMu.Lock()
	booKeys := len(s.boo)
	s.booMu.Unlock()

	return Stats{
		Pollers:    s.timer.Stats(),
		BooKeys:    booKeys,
		Goroutines: runtime.NumGoroutine(),
	}
}
