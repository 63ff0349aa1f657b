package object

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// P builds a key/value pair for [New].
func P[V any](key string, value V) orderedmap.Pair[string, V] {
	return orderedmap.Pair[string, V]{Key: key, Value: value}
}

// New creates an ordered object holding pairs in the given order. A key that
// appears twice keeps its first position and its last value.
func New[V any](pairs ...orderedmap.Pair[string, V]) *orderedmap.OrderedMap[string, V] {
	o := orderedmap.New[string, V](len(pairs))
	for _, p := range pairs {
		o.Set(p.Key, p.Value)
	}
	return o
}

// FromMap creates an ordered object from a plain map. Keys are inserted in
// ascending order so the result is deterministic.
func FromMap[V any](m map[string]V) *orderedmap.OrderedMap[string, V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := orderedmap.New[string, V](len(keys))
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}

// Clone returns a shallow copy of o with the same key order.
func Clone[V any](o *orderedmap.OrderedMap[string, V]) *orderedmap.OrderedMap[string, V] {
	out := orderedmap.New[string, V](o.Len())
	for p := o.Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, p.Value)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of o in order.
func Keys[V any](o *orderedmap.OrderedMap[string, V]) []string {
	out := make([]string, 0, o.Len())
	for p := o.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Values returns the values of o in key order.
func Values[V any](o *orderedmap.OrderedMap[string, V]) []V {
	out := make([]V, 0, o.Len())
	for p := o.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

// Has reports whether key is an own key of o.
func Has[V any](o *orderedmap.OrderedMap[string, V], key string) bool {
	_, ok := o.Get(key)
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every key of every source into target, in order. Later
// sources overwrite earlier ones and the target's own values. target is
// modified in place and returned.
//
//	object.Extend(o, object.New(object.P("key2", "new")), object.New(object.P("bla", "more")))
func Extend[V any](target *orderedmap.OrderedMap[string, V], sources ...*orderedmap.OrderedMap[string, V]) *orderedmap.OrderedMap[string, V] {
	for _, src := range sources {
		for p := src.Oldest(); p != nil; p = p.Next() {
			target.Set(p.Key, p.Value)
		}
	}
	return target
}

// Defaults copies keys the target lacks from each source, in order. The
// first source that defines a missing key wins; existing target keys are
// never overwritten. target is modified in place and returned.
func Defaults[V any](target *orderedmap.OrderedMap[string, V], sources ...*orderedmap.OrderedMap[string, V]) *orderedmap.OrderedMap[string, V] {
	for _, src := range sources {
		for p := src.Oldest(); p != nil; p = p.Next() {
			if _, present := target.Get(p.Key); !present {
				target.Set(p.Key, p.Value)
			}
		}
	}
	return target
}
