package session

import "fmt"

// IOError reports a config file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading config %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ScriptError reports a config document that failed to evaluate or decode,
// including errors raised by poll while the script ran.
type ScriptError struct {
	Path string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("evaluating config %s: %v", e.Path, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }
