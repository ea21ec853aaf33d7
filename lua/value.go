package lua

import (
	glua "github.com/yuin/gopher-lua"
)

// ToGo converts a Lua value into plain Go data.
//
//   - nil, boolean, number and string map to nil, bool, float64 and string
//   - a table whose keys are exactly 1..n maps to []any, any other table to
//     map[string]any (number keys are stringified, other keys dropped)
//   - functions, userdata, threads and channels are returned as the LValue
//     itself and treated as opaque by everything downstream
//
// Cyclic references convert to nil at the point the cycle closes.
func ToGo(v glua.LValue) any {
	return toGo(v, make(map[*glua.LTable]bool))
}

func toGo(v glua.LValue, seen map[*glua.LTable]bool) any {
	switch t := v.(type) {
	case *glua.LNilType:
		return nil
	case glua.LBool:
		return bool(t)
	case glua.LNumber:
		return float64(t)
	case glua.LString:
		return string(t)
	case *glua.LTable:
		if seen[t] {
			return nil
		}
		seen[t] = true
		defer delete(seen, t)
		if isArray(t) {
			return tableToSlice(t, seen)
		}
		return tableToMap(t, seen)
	default:
		return v
	}
}

func isArray(t *glua.LTable) bool {
	n := t.Len()
	if n == 0 {
		return false
	}
	count := 0
	array := true
	t.ForEach(func(k, _ glua.LValue) {
		count++
		if num, ok := k.(glua.LNumber); !ok || float64(num) != float64(int(num)) || int(num) < 1 || int(num) > n {
			array = false
		}
	})
	return array && count == n
}

func tableToSlice(t *glua.LTable, seen map[*glua.LTable]bool) []any {
	out := make([]any, t.Len())
	for i := range out {
		out[i] = toGo(t.RawGetInt(i+1), seen)
	}
	return out
}

func tableToMap(t *glua.LTable, seen map[*glua.LTable]bool) map[string]any {
	out := make(map[string]any)
	t.ForEach(func(k, v glua.LValue) {
		switch key := k.(type) {
		case glua.LString:
			out[string(key)] = toGo(v, seen)
		case glua.LNumber:
			out[key.String()] = toGo(v, seen)
		}
	})
	return out
}

// ToLua converts plain Go data into a value owned by L. Opaque values that
// belong to another interpreter convert to nil.
func ToLua(L *glua.LState, v any) glua.LValue {
	switch t := v.(type) {
	case nil:
		return glua.LNil
	case bool:
		return glua.LBool(t)
	case string:
		return glua.LString(t)
	case float64:
		return glua.LNumber(t)
	case float32:
		return glua.LNumber(t)
	case int:
		return glua.LNumber(t)
	case int64:
		return glua.LNumber(t)
	case uint64:
		return glua.LNumber(t)
	case []any:
		tbl := L.CreateTable(len(t), 0)
		for i, e := range t {
			tbl.RawSetInt(i+1, ToLua(L, e))
		}
		return tbl
	case map[string]any:
		tbl := L.CreateTable(0, len(t))
		for k, e := range t {
			tbl.RawSetString(k, ToLua(L, e))
		}
		return tbl
	default:
		return glua.LNil
	}
}
