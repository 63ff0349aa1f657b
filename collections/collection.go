package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-underbar/arr"
)

// Collection is a generic, immutable wrapper around a slice of T that chains
// the [arr] helpers.
//
// Every method that transforms the collection returns a *new* Collection and
// leaves the receiver untouched, so a Collection may be read from several
// goroutines at once.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	top := collections.New(5, 3, 8, 1).
//	    Filter(func(n, _ int) bool { return n > 2 }).
//	    SortBy(arr.Iteratee[int]{}).
//	    FirstN(2)
//
// Callbacks receive (item, index). Operations that change the element type
// are package-level functions ([Map], [Pluck], [Reduce], [Zip], ...) because
// methods cannot introduce type parameters.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return wrap(dst)
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return wrap([]T{})
}

// wrap adopts items without copying. Only for slices nobody else holds.
func wrap[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// First returns the first item.
// Returns the zero value and false when the collection is empty.
func (c *Collection[T]) First() (T, bool) { return arr.First(c.items) }

// FirstN returns a new collection holding the first n items.
func (c *Collection[T]) FirstN(n int) *Collection[T] { return wrap(arr.FirstN(c.items, n)) }

// Last returns the last item.
// Returns the zero value and false when the collection is empty.
func (c *Collection[T]) Last() (T, bool) { return arr.Last(c.items) }

// LastN returns a new collection holding the last n items.
func (c *Collection[T]) LastN(n int) *Collection[T] { return wrap(arr.LastN(c.items, n)) }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item in order.
func (c *Collection[T]) Each(fn func(T, int)) {
	arr.Each(c.items, func(item T, i int, _ []T) { fn(item, i) })
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return wrap(arr.Filter(c.items, func(item T, i int, _ []T) bool { return fn(item, i) }))
}

// Reject returns a new collection with items for which fn returns true removed.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return wrap(arr.Reject(c.items, func(item T, i int, _ []T) bool { return fn(item, i) }))
}

// Shuffle returns a new collection with the items in random order.
func (c *Collection[T]) Shuffle() *Collection[T] { return wrap(arr.Shuffle(c.items)) }

// SortBy returns a new collection sorted ascending by the iteratee. Unlike
// [arr.SortBy] the receiver keeps its order.
//
//	byAge := people.SortBy(arr.ByKey[Person]("age"))
func (c *Collection[T]) SortBy(by arr.Iteratee[T]) *Collection[T] {
	return wrap(arr.SortBy(c.All(), by))
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether fn holds for every item. A nil fn tests items with
// [arr.Truthy].
func (c *Collection[T]) Every(fn func(T) bool) bool { return arr.Every(c.items, fn) }

// Some reports whether fn holds for at least one item. A nil fn tests items
// with [arr.Truthy].
func (c *Collection[T]) Some(fn func(T) bool) bool { return arr.Some(c.items, fn) }

// Reduce1 folds the collection without a starting value: the first item
// seeds the accumulator. Returns false for an empty collection.
//
// For reductions with a seed, or that change the type, use the package-level
// [Reduce] function.
func (c *Collection[T]) Reduce1(fn func(carry, item T) T) (T, bool) {
	return arr.Reduce1(c.items, fn)
}
