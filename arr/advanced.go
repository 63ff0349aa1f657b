package arr

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"reflect"
	"sort"

	"github.com/samber/mo"
)

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a uniformly shuffled copy of items. items is not modified.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ShuffleRand is [Shuffle] drawing from r, for reproducible orderings.
func ShuffleRand[T any](items []T, r *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Invocation
// ─────────────────────────────────────────────────────────────────────────────

// Invoke calls fn(item, args...) for every element, passing the element as
// the explicit receiver, and returns the results in order.
//
//	upper := arr.Invoke(words, func(s string, _ ...any) string { return strings.ToUpper(s) })
func Invoke[T, R any](items []T, fn func(T, ...any) R, args ...any) []R {
	return Map(items, func(item T, _ int, _ []T) R { return fn(item, args...) })
}

// InvokeMethod calls the exported method called name on every element with
// args and collects the first return value of each call (nil for methods
// without results).
//
// An element without such a method panics with an error wrapping
// [ErrMethodNotFound]; argument mismatches panic as reflect does.
func InvokeMethod[T any](items []T, name string, args ...any) []any {
	return Map(items, func(item T, _ int, _ []T) any {
		m := reflect.ValueOf(item).MethodByName(name)
		if !m.IsValid() {
			panic(fmt.Errorf("%w: %s on %T", ErrMethodNotFound, name, item))
		}
		out := m.Call(callArgs(m.Type(), args))
		if len(out) == 0 {
			return nil
		}
		return out[0].Interface()
	})
}

func callArgs(mt reflect.Type, args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a != nil {
			in[i] = reflect.ValueOf(a)
			continue
		}
		switch {
		case mt.IsVariadic() && i >= mt.NumIn()-1:
			in[i] = reflect.Zero(mt.In(mt.NumIn() - 1).Elem())
		case i < mt.NumIn():
			in[i] = reflect.Zero(mt.In(i))
		default:
			in[i] = reflect.Value{}
		}
	}
	return in
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Iteratee selects the value an element is ranked by: either the result of a
// transformer ([By]) or a named property ([ByKey]). The zero Iteratee ranks
// elements by themselves.
type Iteratee[T any] struct {
	fn  func(T) any
	key string
}

// By ranks elements by fn(element).
func By[T any, K cmp.Ordered](fn func(T) K) Iteratee[T] {
	return Iteratee[T]{fn: func(item T) any { return fn(item) }}
}

// ByKey ranks elements by the property named key (see [Property]).
// Elements without the property rank as nil.
func ByKey[T any](key string) Iteratee[T] {
	return Iteratee[T]{key: key}
}

// Value returns the rank value of item.
func (it Iteratee[T]) Value(item T) any {
	switch {
	case it.fn != nil:
		return it.fn(item)
	case it.key != "":
		v, _ := Property(item, it.key)
		return v
	}
	return item
}

// SortBy sorts items in place in ascending order of by.Value(item), comparing
// with [Compare], and returns items for convenience. The caller's slice is
// reordered.
//
//	arr.SortBy(people, arr.ByKey[Person]("Age"))
//	arr.SortBy(words, arr.By(func(s string) int { return len(s) }))
func SortBy[T any](items []T, by Iteratee[T]) []T {
	type ranked struct {
		item T
		rank any
	}
	tmp := make([]ranked, len(items))
	for i, item := range items {
		tmp[i] = ranked{item: item, rank: by.Value(item)}
	}
	sort.SliceStable(tmp, func(i, j int) bool { return Compare(tmp[i].rank, tmp[j].rank) < 0 })
	for i := range tmp {
		items[i] = tmp[i].item
	}
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the elements of every array by index. The result has one tuple
// per index up to the longest array; positions past the end of a shorter
// array hold mo.None.
//
//	arr.Zip([]any{"a", "b"}, []any{1})
//	// → [[Some(a) Some(1)] [Some(b) None]]
func Zip[T any](arrays ...[]T) [][]mo.Option[T] {
	n := 0
	for _, a := range arrays {
		n = max(n, len(a))
	}
	out := make([][]mo.Option[T], n)
	for i := range out {
		tuple := make([]mo.Option[T], len(arrays))
		for j, a := range arrays {
			if i < len(a) {
				tuple[j] = mo.Some(a[i])
			} else {
				tuple[j] = mo.None[T]()
			}
		}
		out[i] = tuple
	}
	return out
}

// Flatten recursively flattens nested slices and arrays of any element type
// into one flat []any, depth-first and left to right. A non-slice argument
// yields a single-element result.
//
//	arr.Flatten([]any{1, []any{2}, []any{3, []any{[]int{4}}}}) // → [1 2 3 4]
func Flatten(nested any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
			return
		case nil:
			out = append(out, nil)
			return
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			out = append(out, v)
			return
		}
		for i := 0; i < rv.Len(); i++ {
			flatten(rv.Index(i).Interface())
		}
	}
	flatten(nested)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Intersection returns the elements of the first array that are present in
// every other array, in the first array's order. Repeated values in the first
// array are kept.
func Intersection[T comparable](arrays ...[]T) []T {
	return narrow(arrays, true)
}

// Difference returns the elements of the first array that appear in none of
// the other arrays, in the first array's order.
func Difference[T comparable](arrays ...[]T) []T {
	return narrow(arrays, false)
}

func narrow[T comparable](arrays [][]T, keep bool) []T {
	if len(arrays) == 0 {
		return []T{}
	}
	result := make([]T, len(arrays[0]))
	copy(result, arrays[0])
	for _, other := range arrays[1:] {
		set := make(map[T]struct{}, len(other))
		for _, item := range other {
			set[item] = struct{}{}
		}
		result = Filter(result, func(item T, _ int, _ []T) bool {
			_, found := set[item]
			return found == keep
		})
	}
	return result
}
