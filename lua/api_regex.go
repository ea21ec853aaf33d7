package lua

import (
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
	glua "github.com/yuin/gopher-lua"
)

const (
	luaRegexTypeName = "Regex"
	regexCacheSize   = 256
)

// regexCache holds compiled patterns for every interpreter in the process.
// Pollers compiling the same pattern on each tick hit it instead of the
// regexp compiler.
var regexCache, _ = lru.New[string, *regexp.Regexp](regexCacheSize)

func compileRegex(pattern string) (*regexp.Regexp, error) {
	if re, ok := regexCache.Get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache.Add(pattern, re)
	return re, nil
}

// registerRegexFuncs installs the global regex table and the Regex userdata
// type. Go regexps give scripts RE2 syntax, which Lua patterns lack.
func registerRegexFuncs(L *glua.LState) {
	mt := L.NewTypeMetatable(luaRegexTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), regexMethods))

	regexTable := L.NewTable()
	L.SetGlobal("regex", regexTable)

	// regex.compile(pattern): Returns a Regex, or nil and an error message
	L.SetField(regexTable, "compile", L.NewFunction(func(L *glua.LState) int {
		re, err := compileRegex(L.CheckString(1))
		if err != nil {
			L.Push(glua.LNil)
			L.Push(glua.LString(err.Error()))
			return 2
		}

		ud := L.NewUserData()
		ud.Value = re
		L.SetMetatable(ud, L.GetTypeMetatable(luaRegexTypeName))
		L.Push(ud)
		return 1
	}))
}

var regexMethods = map[string]glua.LGFunction{
	// re:match(text): Whole match and captures as an array, or nil
	"match": func(L *glua.LState) int {
		matches := checkRegex(L).FindStringSubmatch(L.CheckString(2))
		if matches == nil {
			L.Push(glua.LNil)
			return 1
		}
		L.Push(stringArray(L, matches))
		return 1
	},

	// re:find_all(text): Every non-overlapping match as an array
	"find_all": func(L *glua.LState) int {
		L.Push(stringArray(L, checkRegex(L).FindAllString(L.CheckString(2), -1)))
		return 1
	},

	// re:replace(text, repl): Replaces matches; repl may use $1 expansions
	"replace": func(L *glua.LState) int {
		out := checkRegex(L).ReplaceAllString(L.CheckString(2), L.CheckString(3))
		L.Push(glua.LString(out))
		return 1
	},

	// re:pattern(): The source pattern
	"pattern": func(L *glua.LState) int {
		L.Push(glua.LString(checkRegex(L).String()))
		return 1
	},
}

func checkRegex(L *glua.LState) *regexp.Regexp {
	ud := L.CheckUserData(1)
	re, ok := ud.Value.(*regexp.Regexp)
	if !ok {
		L.ArgError(1, "Regex expected")
	}
	return re
}

func stringArray(L *glua.LState, items []string) *glua.LTable {
	tbl := L.CreateTable(len(items), 0)
	for i, s := range items {
		tbl.RawSetInt(i+1, glua.LString(s))
	}
	return tbl
}
