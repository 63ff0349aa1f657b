package fn

import (
	"sync"
	"sync/atomic"
)

// Once returns a wrapper that invokes f on its first call only, with that
// call's arguments, and returns the first result on every call after it no
// matter which arguments are passed.
//
// A call only counts once f has returned: if f panics, the panic propagates
// and the next call tries again. Concurrent first calls are serialised, so a
// call to the wrapper from inside f deadlocks.
//
//	init := fn.Once(func(names ...string) int { return setup(names) })
//	init("a") // runs setup
//	init("b") // returns the cached result, setup is not run again
func Once[A, R any](f func(...A) R) func(...A) R {
	var (
		mu     sync.Mutex
		done   atomic.Bool
		result R
	)
	return func(args ...A) R {
		if done.Load() {
			return result
		}
		mu.Lock()
		defer mu.Unlock()
		if !done.Load() {
			result = f(args...)
			done.Store(true)
		}
		return result
	}
}

// OnceValue is [Once] for functions without arguments.
func OnceValue[R any](f func() R) func() R {
	once := Once(func(...struct{}) R { return f() })
	return func() R { return once() }
}
