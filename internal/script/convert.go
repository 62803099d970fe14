package script

import (
	"reflect"
	"strconv"

	lua "github.com/yuin/gopher-lua"
)

// toLua converts a Go value to a Lua value.
// Structs become tables keyed by field name; other unsupported values are
// wrapped as userdata.
func (r *Runtime) toLua(v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case lua.LValue:
		return val
	case bool:
		return lua.LBool(val)
	case string:
		return lua.LString(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case []any:
		t := r.L.NewTable()
		for i, item := range val {
			t.RawSetInt(i+1, r.toLua(item))
		}
		return t
	case map[string]any:
		t := r.L.NewTable()
		for k, item := range val {
			t.RawSetString(k, r.toLua(item))
		}
		return t
	}
	return r.reflectToLua(reflect.ValueOf(v))
}

func (r *Runtime) reflectToLua(rv reflect.Value) lua.LValue {
	switch rv.Kind() {
	case reflect.Invalid:
		return lua.LNil
	case reflect.Bool:
		return lua.LBool(rv.Bool())
	case reflect.String:
		return lua.LString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return lua.LNumber(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return lua.LNumber(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return lua.LNumber(rv.Float())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return lua.LNil
		}
		return r.reflectToLua(rv.Elem())
	case reflect.Slice, reflect.Array:
		t := r.L.NewTable()
		for i := range rv.Len() {
			t.RawSetInt(i+1, r.toLua(rv.Index(i).Interface()))
		}
		return t
	case reflect.Map:
		t := r.L.NewTable()
		iter := rv.MapRange()
		for iter.Next() {
			t.RawSet(r.toLua(iter.Key().Interface()), r.toLua(iter.Value().Interface()))
		}
		return t
	case reflect.Struct:
		t := r.L.NewTable()
		rt := rv.Type()
		for i := range rv.NumField() {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			t.RawSetString(luaFieldName(field), r.toLua(rv.Field(i).Interface()))
		}
		return t
	default:
		ud := r.L.NewUserData()
		ud.Value = rv.Interface()
		return ud
	}
}

// luaFieldName returns the lua tag, or the field name with a lower-case
// first letter.
func luaFieldName(field reflect.StructField) string {
	if tag := field.Tag.Get("lua"); tag != "" {
		return tag
	}
	name := []byte(field.Name)
	if name[0] >= 'A' && name[0] <= 'Z' {
		name[0] += 'a' - 'A'
	}
	return string(name)
}

// toGo converts a Lua value to a Go value. Tables with keys 1..n become
// []any; other tables become map[string]any. Functions convert to nil.
func toGo(lv lua.LValue) any {
	return toGoVisited(lv, make(map[*lua.LTable]bool))
}

func toGoVisited(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LUserData:
		return v.Value
	case *lua.LTable:
		// visited holds the tables on the current path, so only cycles
		// are cut and a table shared by two fields converts twice.
		if visited[v] {
			return nil
		}
		visited[v] = true
		defer delete(visited, v)
		return tableToGo(v, visited)
	default:
		return nil
	}
}

func tableToGo(t *lua.LTable, visited map[*lua.LTable]bool) any {
	n := t.Len()
	count := 0
	t.ForEach(func(_, _ lua.LValue) { count++ })

	if n > 0 && n == count {
		out := make([]any, n)
		for i := 1; i <= n; i++ {
			out[i-1] = toGoVisited(t.RawGetInt(i), visited)
		}
		return out
	}

	out := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		var key string
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		case lua.LNumber:
			key = strconv.FormatFloat(float64(kv), 'f', -1, 64)
		default:
			key = k.String()
		}
		out[key] = toGoVisited(v, visited)
	})
	return out
}
