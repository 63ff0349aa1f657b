package collections

import (
	"fmt"
	"reflect"
	"sync"
)

// MixinFunc is a named operation added to Collection[T] at runtime. It
// receives the collection plus the call's extra arguments and returns a
// collection of the same element type, so mixins chain like built-in
// methods.
type MixinFunc[T any] func(c *Collection[T], args ...any) *Collection[T]

// Mixins are scoped by element type: "evens" registered for int is a
// different mixin from "evens" registered for float64.
type mixinKey struct {
	elem reflect.Type
	name string
}

var mixins sync.Map // mixinKey -> MixinFunc[T]

func keyOf[T any](name string) mixinKey {
	return mixinKey{elem: reflect.TypeFor[T](), name: name}
}

// RegisterMixin adds fn under name for collections of T, replacing any
// earlier registration for the same name and element type.
//
//	collections.RegisterMixin("evens", func(c *collections.Collection[int], _ ...any) *collections.Collection[int] {
//	    return c.Filter(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Mixin("evens") // [2, 4]
func RegisterMixin[T any](name string, fn MixinFunc[T]) {
	mixins.Store(keyOf[T](name), fn)
}

// HasMixin reports whether name is registered for collections of T.
func HasMixin[T any](name string) bool {
	_, ok := mixins.Load(keyOf[T](name))
	return ok
}

// FlushMixins removes every registered mixin, for all element types.
func FlushMixins() { mixins.Clear() }

// CallMixin runs the mixin registered under name for T on c. The error
// wraps [ErrMixinNotFound] when nothing is registered for that name and
// element type.
func CallMixin[T any](name string, c *Collection[T], args ...any) (*Collection[T], error) {
	fn, ok := mixins.Load(keyOf[T](name))
	if !ok {
		return nil, fmt.Errorf("%w: %q for %v", ErrMixinNotFound, name, reflect.TypeFor[T]())
	}
	return fn.(MixinFunc[T])(c, args...), nil
}

// Mixin is the method form of [CallMixin].
func (c *Collection[T]) Mixin(name string, args ...any) (*Collection[T], error) {
	return CallMixin(name, c, args...)
}
