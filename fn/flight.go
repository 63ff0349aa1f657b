package fn

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// flight collapses concurrent computations of one key into a single call.
// shared reports whether the result came from another caller's computation.
type flight[K comparable, R any] interface {
	do(key K, compute func() R) (value R, shared bool)
}

// textFlight serves string keys through singleflight.
type textFlight[R any] struct {
	group singleflight.Group
}

func (f *textFlight[R]) do(key string, compute func() R) (R, bool) {
	v, _, shared := f.group.Do(key, func() (any, error) {
		return entry[R]{value: compute()}, nil
	})
	return v.(entry[R]).value, shared
}

// keyFlight is the same collapsing for arbitrary comparable keys, which
// singleflight cannot take without first turning them into strings.
type keyFlight[K comparable, R any] struct {
	mu    sync.Mutex
	calls map[K]*pending[R]
}

type pending[R any] struct {
	wg    sync.WaitGroup
	value R
	ok    bool
}

func (f *keyFlight[K, R]) do(key K, compute func() R) (R, bool) {
	for {
		f.mu.Lock()
		if f.calls == nil {
			f.calls = make(map[K]*pending[R])
		}
		c, running := f.calls[key]
		if !running {
			c = &pending[R]{}
			c.wg.Add(1)
			f.calls[key] = c
			f.mu.Unlock()
			return f.lead(key, c, compute), false
		}
		f.mu.Unlock()

		c.wg.Wait()
		if c.ok {
			return c.value, true
		}
		// the leader panicked; compete to run it again
	}
}

func (f *keyFlight[K, R]) lead(key K, c *pending[R], compute func() R) R {
	defer func() {
		f.mu.Lock()
		delete(f.calls, key)
		f.mu.Unlock()
		c.wg.Done()
	}()
	c.value = compute()
	c.ok = true
	return c.value
}
