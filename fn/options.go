package fn

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultShards is the number of independently locked partitions of an
// unbounded memo cache.
const DefaultShards = 16

// MemoizeOptions configures [MemoizeWith], [Memoize2With] and
// [MemoizeArgsWith].
type MemoizeOptions struct {
	// MaxEntries bounds the cache. Zero keeps every result forever, which is
	// the classic memoize behaviour; a positive value evicts the least
	// recently used entry once the bound is reached.
	MaxEntries int

	// Shards is the number of lock partitions of an unbounded cache.
	// Zero selects [DefaultShards]. Ignored when MaxEntries > 0.
	Shards int

	// Logger receives debug entries for cache hits, misses and evictions.
	// Nil discards them.
	Logger *zap.Logger
}

// DefaultMemoizeOptions returns an unbounded, [DefaultShards]-way cache
// configuration that does not log.
func DefaultMemoizeOptions() MemoizeOptions {
	return MemoizeOptions{Shards: DefaultShards, Logger: zap.NewNop()}
}

func (o MemoizeOptions) normalize() MemoizeOptions {
	if o.MaxEntries < 0 {
		panic(fmt.Errorf("%w: MaxEntries must be >= 0, got %d", ErrInvalidOption, o.MaxEntries))
	}
	if o.Shards < 0 {
		panic(fmt.Errorf("%w: Shards must be >= 0, got %d", ErrInvalidOption, o.Shards))
	}
	if o.Shards == 0 {
		o.Shards = DefaultShards
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// ThrottleOptions configures [ThrottleWith].
type ThrottleOptions struct {
	// Clock measures the throttle window. Nil selects [SystemClock].
	Clock Clock

	// Logger receives a debug entry for every suppressed call. Nil discards.
	Logger *zap.Logger
}

// DefaultThrottleOptions returns options using the wall clock and no logging.
func DefaultThrottleOptions() ThrottleOptions {
	return ThrottleOptions{Clock: SystemClock, Logger: zap.NewNop()}
}

func (o ThrottleOptions) normalize() ThrottleOptions {
	if o.Clock == nil {
		o.Clock = SystemClock
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
