package fn_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hasbyte1/go-underbar/fn"
)

func TestMemoizeCachesPerArgument(t *testing.T) {
	calls := map[int]int{}
	square := fn.Memoize(func(n int) int {
		calls[n]++
		return n * n
	})

	assert.Equal(t, 4, square(2))
	assert.Equal(t, 4, square(2))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, map[int]int{2: 1, 3: 1}, calls)
}

func TestMemoizeRecursive(t *testing.T) {
	var fib func(int) int
	calls := 0
	fib = fn.Memoize(func(n int) int {
		calls++
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})
	assert.Equal(t, 832040, fib(30))
	assert.Equal(t, 31, calls)
}

func TestMemoizeNilInterfaceResult(t *testing.T) {
	check := fn.Memoize(func(s string) error {
		if s == "" {
			return errors.New("empty")
		}
		return nil
	})
	assert.NoError(t, check("ok"))
	assert.NoError(t, check("ok"))
	assert.EqualError(t, check(""), "empty")
}

type box struct{ n int }

func TestMemoizeKeysPointersByIdentity(t *testing.T) {
	calls := 0
	read := fn.Memoize(func(b *box) int {
		calls++
		return b.n
	})

	a, b := &box{1}, &box{1}
	assert.Equal(t, 1, read(a))
	assert.Equal(t, 1, read(b))
	assert.Equal(t, 2, calls, "distinct pointers are distinct keys")

	a.n = 5
	assert.Equal(t, 1, read(a), "the pointee changing does not change the key")
	assert.Equal(t, 2, calls)
}

func TestMemoize2KeysByEquality(t *testing.T) {
	calls := 0
	pick := fn.Memoize2(func(b *box, scale int) int {
		calls++
		return b.n * scale
	})
	a := &box{3}
	pick(a, 2)
	pick(a, 2)
	pick(&box{3}, 2)
	pick(a, 3)
	assert.Equal(t, 3, calls)
}

func TestMemoizeRetriesAfterPanic(t *testing.T) {
	calls := 0
	parse := fn.Memoize(func(s string) int {
		calls++
		if calls == 1 {
			panic("transient")
		}
		return len(s)
	})
	assert.Panics(t, func() { parse("abc") })
	assert.Equal(t, 3, parse("abc"))
	assert.Equal(t, 3, parse("abc"))
	assert.Equal(t, 2, calls)
}

func TestMemoize2(t *testing.T) {
	calls := 0
	join := fn.Memoize2(func(a string, b int) string {
		calls++
		return a + string(rune('0'+b))
	})
	assert.Equal(t, "x1", join("x", 1))
	assert.Equal(t, "x1", join("x", 1))
	assert.Equal(t, "x2", join("x", 2))
	assert.Equal(t, 2, calls)
}

func TestMemoizeArgsKeysByTypeAndValue(t *testing.T) {
	calls := 0
	describe := fn.MemoizeArgs(func(args ...any) int {
		calls++
		return len(args)
	})

	describe(1, 2)
	describe(1, 2)
	assert.Equal(t, 1, calls)

	describe("1", 2)
	describe(int64(1), 2)
	describe(1, 2, nil)
	describe()
	assert.Equal(t, 5, calls)

	describe("a\x1fb")
	describe("a", "b")
	assert.Equal(t, 7, calls)
}

func TestMemoizeConcurrentMissesComputeOnce(t *testing.T) {
	var calls atomic.Int32
	slow := fn.Memoize(func(n int) int {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return n + 1
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 8, slow(7))
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestMemoizeBoundedEvictsLeastRecentlyUsed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	calls := map[string]int{}
	var mu sync.Mutex
	upper := fn.MemoizeWith(func(s string) string {
		mu.Lock()
		calls[s]++
		mu.Unlock()
		return s + "!"
	}, fn.MemoizeOptions{MaxEntries: 2, Logger: zap.New(core)})

	upper("a")
	upper("b")
	upper("a") // a is now most recently used
	upper("c") // evicts b
	upper("a")
	upper("b")

	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 1}, calls)
	assert.GreaterOrEqual(t, logs.FilterMessage("memoize: evicted").Len(), 1)
	assert.GreaterOrEqual(t, logs.FilterMessage("memoize: hit").Len(), 2)
}

func TestMemoizeSingleShard(t *testing.T) {
	calls := 0
	id := fn.MemoizeWith(func(n int) int { calls++; return n }, fn.MemoizeOptions{Shards: 1})
	for i := 0; i < 3; i++ {
		id(1)
		id(2)
	}
	assert.Equal(t, 2, calls)
}

func TestMemoizeInvalidOptions(t *testing.T) {
	err := recoverError(t, func() {
		fn.MemoizeWith(func(n int) int { return n }, fn.MemoizeOptions{MaxEntries: -1})
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fn.ErrInvalidOption))

	err = recoverError(t, func() {
		fn.MemoizeArgsWith(func(...any) int { return 0 }, fn.MemoizeOptions{Shards: -4})
	})
	assert.ErrorIs(t, err, fn.ErrInvalidOption)
}

func TestDefaultMemoizeOptions(t *testing.T) {
	opts := fn.DefaultMemoizeOptions()
	assert.Equal(t, 0, opts.MaxEntries)
	assert.Equal(t, fn.DefaultShards, opts.Shards)
	assert.NotNil(t, opts.Logger)
}
