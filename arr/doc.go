// Package arr provides standalone, generic helper functions for Go slices,
// modelled after the collection functions of underscore-style JavaScript
// toolkits (each, map, reduce, pluck, uniq, zip, flatten, ...).
//
// # Slice helpers
//
// All helpers operate on plain []T values; no wrapper type is required.
// Iterator callbacks receive (item, index, items):
//
//	evens := arr.Filter([]int{1, 2, 3, 4}, func(n, _ int, _ []int) bool { return n%2 == 0 })
//	sum   := arr.Reduce([]int{1, 2, 3}, func(acc, n int) int { return acc + n }, 0)
//	zs    := arr.Zip([]any{"a", "b"}, []any{1})
//
// Only [SortBy] mutates its input (it sorts in place, as the classic toolkit
// does). Every other helper returns fresh slices and leaves its arguments
// untouched; [Shuffle] in particular never reorders the caller's slice.
//
// # Transformer or property name
//
// Dynamic "function or key name" arguments become explicit variants:
// [By] / [ByKey] build an [Iteratee] for [SortBy], [Pluck] takes a function
// while [PluckKey] takes a property path, and [Invoke] / [InvokeMethod] split
// the receiver-function and method-name forms. Property paths are resolved
// by [Property] against maps, ordered maps, structs and slices:
//
//	arr.PluckKey(users, "address.city")
//	arr.SortBy(users, arr.ByKey[User]("age"))
//
// # Failure model
//
// Helpers fail fast on malformed input instead of repairing it: calling a
// method that does not exist, or comparing uncomparable dynamic values in
// [Uniq], panics the way the runtime does.
//
// # Portability
//
// The helpers follow the map/filter/reduce pattern and translate directly to
// other languages. Missing values are modelled explicitly ((T, bool) results,
// mo.Option in [Zip]) rather than with an undefined sentinel.
package arr
