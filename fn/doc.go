// Package fn provides function decorators: wrappers that add caching,
// deferral or rate limiting to an existing function without changing what it
// computes.
//
//	load := fn.OnceValue(loadConfig)              // runs loadConfig at most once
//	fib  := fn.Memoize(slowFib)                   // one computation per distinct n
//	save := fn.Throttle(persist, time.Second)     // at most one call per second
//	fn.Delay(notify, 500*time.Millisecond, "done") // fire and forget
//
// # State and concurrency
//
// The closures returned by [Once], [Memoize] and [Throttle] own private
// state (a flag, a cache, a timestamp) for as long as they are referenced.
// All of them synchronise that state, so a single decorated function may be
// shared between goroutines.
//
// # Configuration
//
// Decorators with tunables have a ...With variant taking an options struct;
// start from [DefaultMemoizeOptions] or [DefaultThrottleOptions]. Options are
// validated at construction: nonsensical values panic with an error wrapping
// [ErrInvalidOption]. A *zap.Logger may be supplied to trace cache and
// throttle decisions at debug level; the default logger discards everything.
package fn
