package collections

// Enumerable is the read-only surface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so callers can pass alternative
// implementations without depending on the concrete *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// First and Last return the boundary items, with false when empty.
	First() (T, bool)
	Last() (T, bool)
}

var _ Enumerable[int] = (*Collection[int])(nil)
