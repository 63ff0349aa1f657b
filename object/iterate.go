package object

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hasbyte1/go-underbar/arr"
)

// Each calls fn(value, key, o) for every own key of o in declaration order.
func Each[V any](o *orderedmap.OrderedMap[string, V], fn func(V, string, *orderedmap.OrderedMap[string, V])) {
	for p := o.Oldest(); p != nil; p = p.Next() {
		fn(p.Value, p.Key, o)
	}
}

// Filter returns, in key order, the values for which fn returns true.
func Filter[V any](o *orderedmap.OrderedMap[string, V], fn func(V, string, *orderedmap.OrderedMap[string, V]) bool) []V {
	out := make([]V, 0, o.Len())
	Each(o, func(v V, k string, obj *orderedmap.OrderedMap[string, V]) {
		if fn(v, k, obj) {
			out = append(out, v)
		}
	})
	return out
}

// Reject returns, in key order, the values for which fn returns false.
func Reject[V any](o *orderedmap.OrderedMap[string, V], fn func(V, string, *orderedmap.OrderedMap[string, V]) bool) []V {
	return Filter(o, func(v V, k string, obj *orderedmap.OrderedMap[string, V]) bool { return !fn(v, k, obj) })
}

// Map applies fn to every value and returns the results in key order.
func Map[V, U any](o *orderedmap.OrderedMap[string, V], fn func(V, string, *orderedmap.OrderedMap[string, V]) U) []U {
	out := make([]U, 0, o.Len())
	Each(o, func(v V, k string, obj *orderedmap.OrderedMap[string, V]) {
		out = append(out, fn(v, k, obj))
	})
	return out
}

// Reduce folds every value, in key order, into initial.
func Reduce[V, U any](o *orderedmap.OrderedMap[string, V], fn func(U, V) U, initial U) U {
	return arr.Reduce(Values(o), fn, initial)
}

// Reduce1 folds the values without a starting value; see [arr.Reduce1].
func Reduce1[V any](o *orderedmap.OrderedMap[string, V], fn func(V, V) V) (V, bool) {
	return arr.Reduce1(Values(o), fn)
}

// Contains reports whether any value of o equals target.
func Contains[V comparable](o *orderedmap.OrderedMap[string, V], target V) bool {
	for p := o.Oldest(); p != nil; p = p.Next() {
		if p.Value == target {
			return true
		}
	}
	return false
}

// Every reports whether fn holds for every value. A nil fn tests values with
// [arr.Truthy].
func Every[V any](o *orderedmap.OrderedMap[string, V], fn func(V) bool) bool {
	return arr.Every(Values(o), fn)
}

// Some reports whether fn holds for at least one value. A nil fn tests values
// with [arr.Truthy].
func Some[V any](o *orderedmap.OrderedMap[string, V], fn func(V) bool) bool {
	return arr.Some(Values(o), fn)
}
