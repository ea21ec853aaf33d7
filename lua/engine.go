package lua

import (
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	glua "github.com/yuin/gopher-lua"

	"github.com/drake/boobar/config"
)

// protoCacheSize bounds the number of distinct poll sources kept compiled.
const protoCacheSize = 128

// Engine wraps gopher-lua and manages the main VM lifecycle.
// It is a pure mechanism: it knows how to run a config script and expose the
// poll API. It does NOT know about pollers, threads or the renderer.
//
// Engine is not safe for concurrent use. Only the loading goroutine touches it.
type Engine struct {
	L *glua.LState

	// Host interface for registering pollers and reaching the boo store
	host Host

	// Compiled poll sources, shared with worker states. Lives for one load:
	// Init purges it, so it only saves work when a script polls the same
	// source more than once.
	protos *lru.Cache[string, *glua.FunctionProto]
}

// NewEngine creates an Engine with the given Host.
func NewEngine(host Host) *Engine {
	cache, _ := lru.New[string, *glua.FunctionProto](protoCacheSize)
	return &Engine{
		host:   host,
		protos: cache,
	}
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state.
// It installs print, regex and poll but does NOT run any script - that's the
// caller's job.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}

	e.L = glua.NewState()
	e.protos.Purge()

	e.registerAPIs()

	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// --- Execution Primitives ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFileString executes code that was read from path, with path's directory
// prepended to package.path for the duration of the call.
func (e *Engine) DoFileString(path, code string) error {
	dir := filepath.Dir(path)

	pkg, ok := e.L.GetGlobal("package").(*glua.LTable)
	if !ok {
		return e.DoString(filepath.Base(path), code)
	}
	oldPath := e.L.GetField(pkg, "path").String()
	e.L.SetField(pkg, "path", glua.LString(dir+"/?.lua;"+oldPath))

	err := e.DoString(filepath.Base(path), code)

	e.L.SetField(pkg, "path", glua.LString(oldPath))

	return err
}

// Document converts the recognized top-level globals into plain Go values.
// Names that are unset are left out of the document.
func (e *Engine) Document() config.Document {
	doc := make(config.Document, len(config.TopLevel))
	for _, name := range config.TopLevel {
		v := e.L.GetGlobal(name)
		if v == glua.LNil {
			continue
		}
		doc[name] = ToGo(v)
	}
	return doc
}

// --- API Registration ---

func (e *Engine) registerAPIs() {
	registerCoreFuncs(e.L, e.host.Logger(), "config")
	registerRegexFuncs(e.L)
	e.registerPollFuncs()
}
