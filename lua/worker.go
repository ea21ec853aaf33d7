package lua

import (
	"fmt"

	glua "github.com/yuin/gopher-lua"
)

// Worker is a private interpreter bound to one poll action.
// A Worker must only be used from the goroutine that created it.
type Worker struct {
	L      *glua.LState
	action *glua.LFunction
}

// NewWorker creates a fresh interpreter for req, wires the boo proxy to host
// and evaluates the poll source to obtain the action.
func (req PollRequest) NewWorker(host Host) (*Worker, error) {
	if req.proto == nil {
		return nil, fmt.Errorf("poll source %q was never compiled", req.Source)
	}

	L := glua.NewState()
	registerCoreFuncs(L, host.Logger(), "poll")
	registerRegexFuncs(L)
	registerBooFuncs(L, host)

	L.Push(L.NewFunctionFromProto(req.proto))
	if err := L.PCall(0, 1, nil); err != nil {
		L.Close()
		return nil, fmt.Errorf("evaluating poll source: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	action, ok := ret.(*glua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("poll source evaluated to %s, want function", ret.Type())
	}

	return &Worker{L: L, action: action}, nil
}

// Tick invokes the action once with a protected call.
func (w *Worker) Tick() error {
	w.L.Push(w.action)
	return w.L.PCall(0, 0, nil)
}

// Close cleans up the Lua state.
func (w *Worker) Close() {
	w.L.Close()
}
