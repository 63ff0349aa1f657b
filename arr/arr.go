package arr

import (
	"math"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Basics
// ─────────────────────────────────────────────────────────────────────────────

// Identity returns v unchanged. It is the default iteratee wherever a
// predicate or transformer is optional.
func Identity[T any](v T) T { return v }

// Truthy reports whether v would count as true in a boolean context of a
// dynamically typed host: nil, false, numeric zero, NaN, "" and every other
// zero value are falsy; anything else is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case float32:
		return val != 0 && !math.IsNaN(float64(val))
	}
	return !reflect.ValueOf(v).IsZero()
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements. n larger than len(items)
// returns everything. A negative n counts from the end: every element except
// the last -n.
func FirstN[T any](items []T, n int) []T {
	if n < 0 {
		n += len(items)
	}
	n = min(max(n, 0), len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements, clamped to [0, len(items)].
// A negative n returns an empty slice.
func LastN[T any](items []T, n int) []T {
	start := max(0, len(items)-max(n, 0))
	out := make([]T, len(items)-start)
	copy(out, items[start:])
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index, items) for every element in ascending index order.
func Each[T any](items []T, fn func(T, int, []T)) {
	for i, item := range items {
		fn(item, i, items)
	}
}

// IndexOf returns the index of the first element equal to target, or -1.
func IndexOf[T comparable](items []T, target T) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}

// Filter returns the elements for which fn(item, index, items) returns true.
func Filter[T any](items []T, fn func(T, int, []T) bool) []T {
	out := make([]T, 0, len(items))
	Each(items, func(item T, i int, all []T) {
		if fn(item, i, all) {
			out = append(out, item)
		}
	})
	return out
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T, int, []T) bool) []T {
	return Filter(items, func(item T, i int, all []T) bool { return !fn(item, i, all) })
}

// Uniq returns a duplicate-free copy of items, keeping the first occurrence
// of every value in its original position.
func Uniq[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Map applies fn(item, index, items) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int, []T) U) []U {
	out := make([]U, 0, len(items))
	Each(items, func(item T, i int, all []T) {
		out = append(out, fn(item, i, all))
	})
	return out
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	return Map(items, func(item T, _ int, _ []T) U { return fn(item) })
}

// PluckKey extracts the property named by key (a field, map key or dot path,
// see [Property]) from every element. Elements lacking the property yield nil.
//
//	ages := arr.PluckKey(people, "age")
func PluckKey[T any](items []T, key string) []any {
	return Map(items, func(item T, _ int, _ []T) any {
		v, _ := Property(item, key)
		return v
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds every element into initial via fn(accumulator, item).
//
//	sum := arr.Reduce([]int{1, 2, 3}, func(acc, n int) int { return acc + n }, 0) // 6
func Reduce[T, U any](items []T, fn func(U, T) U, initial U) U {
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Reduce1 folds items without a starting value: the first element seeds the
// accumulator and is never passed to fn. A single-element slice therefore
// returns that element unchanged. Returns the zero value and false when items
// is empty.
func Reduce1[T any](items []T, fn func(T, T) T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return Reduce(items[1:], fn, items[0]), true
}

// Contains reports whether items holds a value equal to target.
func Contains[T comparable](items []T, target T) bool {
	return IndexOf(items, target) >= 0
}

// Every reports whether fn holds for every element. A nil fn tests each
// element with [Truthy]. Every on an empty slice is true.
func Every[T any](items []T, fn func(T) bool) bool {
	fn = orTruthy(fn)
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Some reports whether fn holds for at least one element. A nil fn tests each
// element with [Truthy]. Some on an empty slice is false.
func Some[T any](items []T, fn func(T) bool) bool {
	fn = orTruthy(fn)
	for _, item := range items {
		if fn(item) {
			return true
		}
	}
	return false
}

func orTruthy[T any](fn func(T) bool) func(T) bool {
	if fn != nil {
		return fn
	}
	return func(item T) bool { return Truthy(item) }
}
