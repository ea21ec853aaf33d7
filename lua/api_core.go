package lua

import (
	"strings"

	"github.com/rs/zerolog"
	glua "github.com/yuin/gopher-lua"
)

// registerCoreFuncs replaces print so script output goes to logger instead
// of the terminal the bar is drawn on. source tags each line ("config" for
// the main state, "poll" for workers).
func registerCoreFuncs(L *glua.LState, logger zerolog.Logger, source string) {
	// print(...): Logs its arguments, tab separated, at info level
	L.SetGlobal("print", L.NewFunction(func(L *glua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		logger.Info().Str("source", source).Msg(strings.Join(parts, "\t"))
		return 0
	}))
}
