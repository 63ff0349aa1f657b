package collections_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/hasbyte1/go-underbar/collections"
)

func evens(c *collections.Collection[int], _ ...any) *collections.Collection[int] {
	return c.Filter(func(n, _ int) bool { return n%2 == 0 })
}

func TestMixinChains(t *testing.T) {
	t.Cleanup(collections.FlushMixins)

	collections.RegisterMixin("evens", evens)
	if !collections.HasMixin[int]("evens") {
		t.Fatal("HasMixin should report the registered mixin")
	}
	res, err := ints(1, 2, 3, 4, 5, 6).Mixin("evens")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, res.LastN(2).All(), []int{4, 6})
}

func TestMixinArgs(t *testing.T) {
	t.Cleanup(collections.FlushMixins)

	collections.RegisterMixin("repeat", func(c *collections.Collection[string], args ...any) *collections.Collection[string] {
		out := c.All()
		for i := 1; i < args[0].(int); i++ {
			out = append(out, c.All()...)
		}
		return collections.From(out)
	})
	got, err := collections.CallMixin("repeat", collections.New("a", "b"), 2)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got.All(), []string{"a", "b", "a", "b"})
}

func TestMixinScopedByElementType(t *testing.T) {
	t.Cleanup(collections.FlushMixins)

	collections.RegisterMixin("evens", evens)
	if collections.HasMixin[float64]("evens") {
		t.Fatal("a mixin for int must not be visible for float64")
	}
	_, err := collections.New(1.0, 2.0).Mixin("evens")
	if !errors.Is(err, collections.ErrMixinNotFound) {
		t.Fatalf("err = %v; want ErrMixinNotFound", err)
	}
}

func TestMixinNotFound(t *testing.T) {
	collections.FlushMixins()
	_, err := ints(1).Mixin("missing")
	if !errors.Is(err, collections.ErrMixinNotFound) {
		t.Fatalf("err = %v; want ErrMixinNotFound", err)
	}
}

func TestFlushMixins(t *testing.T) {
	collections.RegisterMixin("evens", evens)
	collections.FlushMixins()
	if collections.HasMixin[int]("evens") {
		t.Fatal("FlushMixins should remove every mixin")
	}
}

func TestMixinRegistryConcurrent(t *testing.T) {
	t.Cleanup(collections.FlushMixins)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			collections.RegisterMixin("evens", evens)
		}()
		go func() {
			defer wg.Done()
			collections.HasMixin[int]("evens")
		}()
	}
	wg.Wait()
	res, err := ints(1, 2).Mixin("evens")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, res.All(), []int{2})
}
