package lua

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"
)

func TestRegex(t *testing.T) {
	engine, _, cleanup := setupTest(t)
	defer cleanup()

	require.NoError(t, engine.DoString("config.lua", `
		local re = regex.compile("(\\d+)%")
		local m = re:match("battery 87% left")
		whole, level = m[1], m[2]
		miss = re:match("no digits")
		all = #re:find_all("10% 20% 30%")
		replaced = re:replace("at 5%", "$1 percent")
		pat = re:pattern()
		bad, msg = regex.compile("(")
	`))

	assert.Equal(t, "87%", engine.L.GetGlobal("whole").String())
	assert.Equal(t, "87", engine.L.GetGlobal("level").String())
	assert.Equal(t, glua.LNil, engine.L.GetGlobal("miss"))
	assert.Equal(t, glua.LNumber(3), engine.L.GetGlobal("all"))
	assert.Equal(t, "at 5 percent", engine.L.GetGlobal("replaced").String())
	assert.Equal(t, `(\d+)%`, engine.L.GetGlobal("pat").String())
	assert.Equal(t, glua.LNil, engine.L.GetGlobal("bad"))
	assert.Contains(t, engine.L.GetGlobal("msg").String(), "missing closing )")
}

func TestRegexInWorker(t *testing.T) {
	req := pollRequest(t, `poll([[function() boo.n = regex.compile("\\d+"):match("cpu 12")[1] end]], "1s")`)
	store := NewMockHost()

	w, err := req.NewWorker(store)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Tick())
	assert.Equal(t, "12", store.BooGet("n"))
}

func TestRegexCompileIsCached(t *testing.T) {
	engine, _, cleanup := setupTest(t)
	defer cleanup()

	require.NoError(t, engine.DoString("config.lua", `
		a = regex.compile("cache[0-9]+me")
		b = regex.compile("cache[0-9]+me")
	`))

	a := engine.L.GetGlobal("a").(*glua.LUserData)
	b := engine.L.GetGlobal("b").(*glua.LUserData)
	assert.NotSame(t, a, b)
	assert.Same(t, a.Value, b.Value)

	_, ok := regexCache.Get("cache[0-9]+me")
	assert.True(t, ok)
}
