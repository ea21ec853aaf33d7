package lua

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// MockHost implements Host for testing.
type MockHost struct {
	mu sync.Mutex

	// Captured calls
	PollCalls []PollRequest
	BooSets   []string

	// PollErr is returned from Poll when set
	PollErr error

	// Log is returned from Logger
	Log zerolog.Logger

	boo map[string]any
}

func NewMockHost() *MockHost {
	return &MockHost{boo: make(map[string]any), Log: zerolog.Nop()}
}

func (m *MockHost) Logger() zerolog.Logger { return m.Log }

var errPollRejected = errors.New("poll rejected")

func (m *MockHost) Poll(req PollRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PollErr != nil {
		return m.PollErr
	}
	m.PollCalls = append(m.PollCalls, req)
	return nil
}

func (m *MockHost) BooGet(key string) any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.boo[key]
}

func (m *MockHost) BooSet(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BooSets = append(m.BooSets, key)
	if value == nil {
		delete(m.boo, key)
		return
	}
	m.boo[key] = value
}

// Polls returns a copy of the captured poll requests.
func (m *MockHost) Polls() []PollRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PollRequest, len(m.PollCalls))
	copy(out, m.PollCalls)
	return out
}
