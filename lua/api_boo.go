package lua

import glua "github.com/yuin/gopher-lua"

// registerBooFuncs exposes the shared boo namespace inside a worker state:
// a proxy table boo whose reads and writes go straight to the store, plus
// boo_get(key) and boo_set(key, value).
func registerBooFuncs(L *glua.LState, store BooStore) {
	get := func(L *glua.LState, key string) int {
		L.Push(ToLua(L, store.BooGet(key)))
		return 1
	}
	set := func(L *glua.LState, key string, value glua.LValue) int {
		store.BooSet(key, ToGo(value))
		return 0
	}

	proxy := L.NewTable()
	meta := L.NewTable()

	// boo.key reads through to the store
	L.SetField(meta, "__index", L.NewFunction(func(L *glua.LState) int {
		return get(L, L.CheckString(2))
	}))

	// boo.key = value writes through to the store
	L.SetField(meta, "__newindex", L.NewFunction(func(L *glua.LState) int {
		return set(L, L.CheckString(2), L.Get(3))
	}))

	L.SetMetatable(proxy, meta)
	L.SetGlobal("boo", proxy)

	// boo_get(key): Read a value from the shared namespace
	L.SetGlobal("boo_get", L.NewFunction(func(L *glua.LState) int {
		return get(L, L.CheckString(1))
	}))

	// boo_set(key, value): Write a value; nil deletes the key
	L.SetGlobal("boo_set", L.NewFunction(func(L *glua.LState) int {
		return set(L, L.CheckString(1), L.Get(2))
	}))
}
