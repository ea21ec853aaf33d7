package lua

import (
	"time"

	"github.com/rs/zerolog"
	glua "github.com/yuin/gopher-lua"
)

// BooStore is the shared scratch namespace poll actions read and write.
// Implementations must be safe for concurrent use: every worker calls into it
// from its own goroutine.
type BooStore interface {
	BooGet(key string) any
	// BooSet stores value under key. A nil value deletes the key.
	BooSet(key string, value any)
}

// Host provides the bridge between Engine and the rest of the system.
// This abstraction decouples Engine from the poller runtime,
// making it testable without spawning workers.
type Host interface {
	BooStore

	// Poll registers a poller requested by the config script. It is called
	// on the loading goroutine while the script runs; a returned error is
	// raised back into the script.
	Poll(req PollRequest) error

	// Logger receives script output (print) from the main state and workers.
	Logger() zerolog.Logger
}

// PollRequest is one poll(source, interval) call made by a config script.
type PollRequest struct {
	Source   string
	Interval time.Duration

	proto *glua.FunctionProto
}
