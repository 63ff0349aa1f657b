// Package collections provides a fluent, immutable Collection type over the
// [arr] helpers, plus a runtime mixin registry.
//
// # Overview
//
// [Collection][T] wraps a slice of T and exposes the arr operations as
// chainable methods, the object-oriented counterpart of calling the helpers
// directly:
//
//	evens := collections.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    LastN(2) // → [4, 6]
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged, including [Collection.SortBy], which sorts a copy.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type, or that need comparable items,
// are package-level functions: [Map], [Pluck], [PluckKey], [Reduce], [Uniq],
// [Contains], [IndexOf], [Intersection], [Difference], [Zip], [Flatten].
//
//	labels := collections.Map(c, func(n, _ int) string { return strconv.Itoa(n) })
//
// # Mixins (runtime extension)
//
// [RegisterMixin] adds a named, chainable operation for one element type;
// [Collection.Mixin] runs it. Registrations for different element types never
// see each other:
//
//	collections.RegisterMixin("evens", func(c *collections.Collection[int], _ ...any) *collections.Collection[int] {
//	    return c.Filter(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Mixin("evens")
package collections
