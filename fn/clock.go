package fn

import "time"

// Clock tells time. [Throttle] reads it to measure windows; tests substitute
// a manual clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock (with monotonic readings), the default
// [Clock] of every decorator.
var SystemClock Clock = systemClock{}
