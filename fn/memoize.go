package fn

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// memo is the shared machinery behind every Memoize variant: a result store
// plus a flight group so concurrent misses on one key compute once.
type memo[K comparable, R any] struct {
	store  store[K, R]
	flight flight[K, R]
	logger *zap.Logger
}

func newMemo[K comparable, R any](opts MemoizeOptions, hash func(K) uint64, fl flight[K, R]) *memo[K, R] {
	opts = opts.normalize()
	return &memo[K, R]{store: newStore[K, R](opts, hash), flight: fl, logger: opts.Logger}
}

// newKeyedMemo keys results on K itself, with Go == semantics.
func newKeyedMemo[K comparable, R any](opts MemoizeOptions) *memo[K, R] {
	return newMemo[K, R](opts, hashComparable[K](), &keyFlight[K, R]{})
}

func (m *memo[K, R]) lookup(key K, compute func() R) R {
	if v, ok := m.store.get(key); ok {
		m.logger.Debug("memoize: hit", zap.Any("key", key))
		return v
	}
	v, shared := m.flight.do(key, func() R {
		if v, ok := m.store.get(key); ok {
			return v
		}
		m.logger.Debug("memoize: miss", zap.Any("key", key))
		r := compute()
		m.store.add(key, r)
		return r
	})
	if shared {
		m.logger.Debug("memoize: shared in-flight result", zap.Any("key", key))
	}
	return v
}

// Memoize returns a wrapper that calls f once per distinct argument and
// replays the stored result on every later call with an argument == to an
// earlier one. Pointer arguments are therefore keyed by address.
//
//	fib := fn.Memoize(func(n int) int { ... })
func Memoize[K comparable, R any](f func(K) R) func(K) R {
	return MemoizeWith(f, DefaultMemoizeOptions())
}

// MemoizeWith is [Memoize] with explicit options.
func MemoizeWith[K comparable, R any](f func(K) R, opts MemoizeOptions) func(K) R {
	m := newKeyedMemo[K, R](opts)
	return func(k K) R {
		return m.lookup(k, func() R { return f(k) })
	}
}

// Memoize2 is [Memoize] for two-argument functions; results are keyed by the
// argument pair, compared with ==.
func Memoize2[A, B comparable, R any](f func(A, B) R) func(A, B) R {
	return Memoize2With(f, DefaultMemoizeOptions())
}

// Memoize2With is [Memoize2] with explicit options.
func Memoize2With[A, B comparable, R any](f func(A, B) R, opts MemoizeOptions) func(A, B) R {
	m := newKeyedMemo[pair[A, B], R](opts)
	return func(a A, b B) R {
		return m.lookup(pair[A, B]{a, b}, func() R { return f(a, b) })
	}
}

// MemoizeArgs memoizes a variadic function by its whole argument list.
// Arguments are expected to be primitives (numbers, strings, booleans, nil);
// two lists share a result when every argument has the same dynamic type and
// value. There is no deep comparison of composite values.
//
//	area := fn.MemoizeArgs(func(args ...any) any { return args[0].(int) * args[1].(int) })
func MemoizeArgs[R any](f func(...any) R) func(...any) R {
	return MemoizeArgsWith(f, DefaultMemoizeOptions())
}

// MemoizeArgsWith is [MemoizeArgs] with explicit options.
func MemoizeArgsWith[R any](f func(...any) R, opts MemoizeOptions) func(...any) R {
	m := newMemo[string, R](opts, hashText, &textFlight[R]{})
	return func(args ...any) R {
		return m.lookup(argsKey(args...), func() R { return f(args...) })
	}
}

type pair[A, B comparable] struct {
	a A
	b B
}

// argsKey encodes an argument list as type:value fields separated by the
// ASCII unit separator. %#v quotes strings, so separators inside arguments
// cannot forge a boundary.
func argsKey(args ...any) string {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		fmt.Fprintf(&b, "%T:%#v", a, a)
	}
	return b.String()
}
