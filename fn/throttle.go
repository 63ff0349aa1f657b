package fn

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Throttle returns a wrapper that invokes f at most once per wait window.
//
// The first call invokes f immediately. Calls arriving before wait has
// elapsed since the last invocation are suppressed: f is not called and the
// wrapper returns the zero value and false. The first call after the window
// has elapsed invokes f again and starts a new window.
//
//	save := fn.Throttle(func(docs ...string) error { return persist(docs) }, time.Second)
//	if err, ran := save("draft"); ran && err != nil { ... }
func Throttle[A, R any](f func(...A) R, wait time.Duration) func(...A) (R, bool) {
	return ThrottleWith(f, wait, DefaultThrottleOptions())
}

// ThrottleWith is [Throttle] with explicit options. It panics with an error
// wrapping [ErrInvalidOption] when wait is negative.
func ThrottleWith[A, R any](f func(...A) R, wait time.Duration, opts ThrottleOptions) func(...A) (R, bool) {
	if wait < 0 {
		panic(fmt.Errorf("%w: throttle wait must be >= 0, got %s", ErrInvalidOption, wait))
	}
	opts = opts.normalize()

	var (
		mu      sync.Mutex
		invoked bool
		last    time.Time
	)
	return func(args ...A) (R, bool) {
		now := opts.Clock.Now()

		mu.Lock()
		if invoked {
			if elapsed := now.Sub(last); elapsed < wait {
				mu.Unlock()
				opts.Logger.Debug("throttle: call suppressed", zap.Duration("remaining", wait-elapsed))
				var zero R
				return zero, false
			}
		}
		invoked, last = true, now
		mu.Unlock()

		return f(args...), true
	}
}
