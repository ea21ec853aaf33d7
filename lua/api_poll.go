package lua

import (
	"fmt"
	"strings"
	"time"

	glua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/drake/boobar/config"
)

// pollChunkName shows up in errors raised while evaluating a poll source.
const pollChunkName = "poll"

// registerPollFuncs installs the global poll(source, interval).
func (e *Engine) registerPollFuncs() {
	// poll(source, interval): Run the function source evaluates to every interval
	e.L.SetGlobal(config.KeyPoll, e.L.NewFunction(func(L *glua.LState) int {
		source := L.CheckString(1)
		every := L.CheckString(2)

		interval, err := config.ParseDuration(every)
		if err != nil {
			L.RaiseError("poll: %s", err.Error())
			return 0
		}
		if interval < time.Millisecond {
			L.RaiseError("poll: interval %q must be at least 1ms", every)
			return 0
		}

		proto, err := e.compile(source)
		if err != nil {
			L.RaiseError("poll: %s", err.Error())
			return 0
		}

		req := PollRequest{Source: source, Interval: interval, proto: proto}
		if err := e.host.Poll(req); err != nil {
			L.RaiseError("poll: %s", err.Error())
		}
		return 0
	}))
}

// compile turns a poll source into a proto that any LState can instantiate.
// The source is an expression yielding the action; when it does not parse as
// one it is compiled as a chunk whose first return value is the action.
func (e *Engine) compile(source string) (*glua.FunctionProto, error) {
	if proto, ok := e.protos.Get(source); ok {
		return proto, nil
	}

	proto, err := compileChunk("return "+source, pollChunkName)
	if err != nil {
		var chunkErr error
		proto, chunkErr = compileChunk(source, pollChunkName)
		if chunkErr != nil {
			return nil, fmt.Errorf("compiling source: %w", chunkErr)
		}
	}

	e.protos.Add(source, proto)
	return proto, nil
}

func compileChunk(code, name string) (*glua.FunctionProto, error) {
	chunk, err := parse.Parse(strings.NewReader(code), name)
	if err != nil {
		return nil, err
	}
	return glua.Compile(chunk, name)
}
