package collections

import (
	"github.com/samber/mo"

	"github.com/hasbyte1/go-underbar/arr"
)

// This file contains package-level generic functions for operations that
// either change the element type or need a tighter constraint (comparable)
// than Collection[T any] carries. They compose with method chains:
//
//	names := collections.Pluck(
//	    people.Filter(func(p Person, _ int) bool { return p.Age > 30 }),
//	    func(p Person) string { return p.Name },
//	)

// Map applies fn to every item and returns a new Collection[U].
//
//	labels := collections.Map(collections.New(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	return wrap(arr.Map(c.items, func(item T, i int, _ []T) U { return fn(item, i) }))
}

// Pluck extracts a value U from every item and returns a new Collection[U].
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return wrap(arr.Pluck(c.items, fn))
}

// PluckKey extracts the property at key (see [arr.Property]) from every
// item. Items without the property contribute nil.
func PluckKey[T any](c *Collection[T], key string) *Collection[any] {
	return wrap(arr.PluckKey(c.items, key))
}

// Reduce folds Collection[T] into a value of type U, starting from initial.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T) U, initial U) U {
	return arr.Reduce(c.items, fn, initial)
}

// Uniq returns a new collection keeping the first occurrence of every value.
func Uniq[T comparable](c *Collection[T]) *Collection[T] {
	return wrap(arr.Uniq(c.items))
}

// Contains reports whether c holds a value equal to v.
func Contains[T comparable](c *Collection[T], v T) bool {
	return arr.Contains(c.items, v)
}

// IndexOf returns the position of the first item equal to v, or -1.
func IndexOf[T comparable](c *Collection[T], v T) int {
	return arr.IndexOf(c.items, v)
}

// Intersection returns the items of c present in every one of others,
// in c's order.
func Intersection[T comparable](c *Collection[T], others ...*Collection[T]) *Collection[T] {
	return wrap(arr.Intersection(itemsOf(c, others)...))
}

// Difference returns the items of c present in none of others, in c's order.
func Difference[T comparable](c *Collection[T], others ...*Collection[T]) *Collection[T] {
	return wrap(arr.Difference(itemsOf(c, others)...))
}

// Zip merges collections by position into tuples. The result has as many
// tuples as the longest input; shorter inputs contribute [mo.None].
//
//	rows := collections.Zip(names, ages)
func Zip[T any](cs ...*Collection[T]) *Collection[[]mo.Option[T]] {
	all := make([][]T, len(cs))
	for i, c := range cs {
		all[i] = c.items
	}
	return wrap(arr.Zip(all...))
}

// Flatten recursively flattens nested slices and arrays held in c into a
// single level. Nested collections are flattened as well.
//
//	flat := collections.Flatten(collections.New[any](1, []any{2, []int{3}}))
//	// → [1, 2, 3]
func Flatten(c *Collection[any]) *Collection[any] {
	return wrap(arr.Flatten(unwrapNested(c.items)))
}

func unwrapNested(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case *Collection[any]:
			out[i] = unwrapNested(v.items)
		case []any:
			out[i] = unwrapNested(v)
		default:
			out[i] = item
		}
	}
	return out
}

func itemsOf[T any](first *Collection[T], rest []*Collection[T]) [][]T {
	out := make([][]T, 0, len(rest)+1)
	out = append(out, first.items)
	for _, c := range rest {
		out = append(out, c.items)
	}
	return out
}
