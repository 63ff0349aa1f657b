// Package object provides underscore-style helpers for key-ordered mappings.
//
// Go maps have no iteration order, so the "object" collection type is an
// insertion-ordered map from string keys to values, backed by
// github.com/wk8/go-ordered-map/v2:
//
//	o := object.New(object.P("a", 1), object.P("b", 2))
//	object.Each(o, func(v int, key string, _ *orderedmap.OrderedMap[string, int]) {
//	    fmt.Println(key, v) // a 1, then b 2
//	})
//
// Iteration always visits own keys in declaration order. Overwriting an
// existing key keeps its position; new keys are appended.
//
// # Merging
//
// [Extend] copies every key of each source into the target (later sources
// win); [Defaults] only fills keys the target does not have yet (earlier
// sources win). Both mutate and return the target:
//
//	opts := object.Defaults(userOpts, object.New(object.P("retries", 3)))
package object
