package arr

import (
	"cmp"
	"reflect"
	"time"
)

// Compare orders two dynamically typed values the way a loosely typed host's
// "<" and ">" operators would for the values callers sort on:
//
//   - any two numbers (every int, uint and float kind) compare numerically
//   - strings compare lexically
//   - false sorts before true
//   - time.Time values compare chronologically
//
// Values that cannot be ordered against each other (mismatched kinds, nil,
// NaN, structs) compare equal, because neither a < b nor a > b holds for them.
// Compare returns -1, 0 or +1.
func Compare(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
		return 0
	}

	va, vb := indirect(a), indirect(b)
	if !va.IsValid() || !vb.IsValid() {
		return 0
	}
	switch {
	case isInt(va) && isInt(vb):
		return cmp.Compare(va.Int(), vb.Int())
	case isUint(va) && isUint(vb):
		return cmp.Compare(va.Uint(), vb.Uint())
	case isInt(va) && isUint(vb):
		return compareIntUint(va.Int(), vb.Uint())
	case isUint(va) && isInt(vb):
		return -compareIntUint(vb.Int(), va.Uint())
	case isNumber(va) && isNumber(vb):
		fa, fb := toFloat(va), toFloat(vb)
		if fa != fa || fb != fb { // NaN
			return 0
		}
		return cmp.Compare(fa, fb)
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	}
	return 0
}

// compareIntUint orders a signed against an unsigned integer without the
// precision loss of a float64 round trip.
func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

func indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(v reflect.Value) bool {
	k := v.Kind()
	return isInt(v) || isUint(v) || k == reflect.Float32 || k == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	}
	return v.Float()
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
