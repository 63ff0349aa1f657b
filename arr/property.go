package arr

import (
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Property lookup
//
// Property resolves a named property on an arbitrary value so that the
// key-name variants of PluckKey and SortBy work on the shapes callers
// actually hold:
//
//	map[string]V                      → m["name"]
//	Get(string) (V, bool) receivers   → ordered maps (object package)
//	structs / *structs                → exported field "Name", or json:"name"
//	slices / arrays                   → numeric segment, e.g. "tags.0"
//
// Dot-separated paths descend nested values. A key that itself contains a
// dot is matched literally before the path is split:
//
//	Property(user, "address.city")  → "London", true
//	Property(map[string]any{"a.b": 1}, "a.b") → 1, true
// ─────────────────────────────────────────────────────────────────────────────

// Property returns the value found at the dot-notation path inside v.
// At every level the remaining path is first tried as one literal key; only
// when that misses is it split at the first dot. The second return value is
// false when the path cannot be resolved.
func Property(v any, path string) (any, bool) {
	if val, ok := lookup(v, path); ok {
		return val, true
	}
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		return nil, false
	}
	next, ok := lookup(v, head)
	if !ok {
		return nil, false
	}
	return Property(next, rest)
}

// HasProperty reports whether the dot-notation path exists inside v.
func HasProperty(v any, path string) bool {
	_, ok := Property(v, path)
	return ok
}

func lookup(v any, key string) (any, bool) {
	if v == nil {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		val, found := m[key]
		return val, found
	}

	rv := reflect.ValueOf(v)
	if val, ok := callGetter(rv, key); ok {
		return val, true
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		return structField(rv, key)
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

// callGetter invokes a Get(string) (V, bool) method when rv has one, which is
// the accessor shape of ordered maps.
func callGetter(rv reflect.Value, key string) (any, bool) {
	m := rv.MethodByName("Get")
	if !m.IsValid() {
		return nil, false
	}
	t := m.Type()
	if t.NumIn() != 1 || t.In(0).Kind() != reflect.String ||
		t.NumOut() != 2 || t.Out(1).Kind() != reflect.Bool {
		return nil, false
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	out := m.Call([]reflect.Value{reflect.ValueOf(key).Convert(t.In(0))})
	if !out[1].Bool() {
		return nil, false
	}
	return out[0].Interface(), true
}

func structField(rv reflect.Value, key string) (any, bool) {
	rt := rv.Type()
	if f, ok := rt.FieldByName(key); ok && f.IsExported() {
		return rv.FieldByIndex(f.Index).Interface(), true
	}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == key || (name == "" && strings.EqualFold(f.Name, key)) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
