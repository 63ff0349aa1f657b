package fn

import "time"

// Delay schedules f(args...) to run on its own goroutine no earlier than wait
// from now and returns immediately. The result of f is not observed.
//
// The returned timer is the underlying scheduling handle; callers that want
// to cancel may Stop it, everyone else can ignore it. A negative wait runs f
// as soon as possible.
//
//	fn.Delay(func(msg ...string) { log.Println(msg) }, 500*time.Millisecond, "a", "b")
func Delay[A any](f func(...A), wait time.Duration, args ...A) *time.Timer {
	captured := make([]A, len(args))
	copy(captured, args)
	return time.AfterFunc(max(wait, 0), func() { f(captured...) })
}
