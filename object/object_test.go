package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar/object"
)

func TestNewKeepsDeclarationOrder(t *testing.T) {
	o := object.New(object.P("z", 1), object.P("a", 2), object.P("m", 3))
	assert.Equal(t, []string{"z", "a", "m"}, object.Keys(o))
	assert.Equal(t, []int{1, 2, 3}, object.Values(o))
}

func TestNewDuplicateKey(t *testing.T) {
	o := object.New(object.P("a", 1), object.P("b", 2), object.P("a", 3))
	assert.Equal(t, []string{"a", "b"}, object.Keys(o))
	v, _ := o.Get("a")
	assert.Equal(t, 3, v)
}

func TestFromMapSortsKeys(t *testing.T) {
	o := object.FromMap(map[string]int{"b": 2, "c": 3, "a": 1})
	assert.Equal(t, []string{"a", "b", "c"}, object.Keys(o))
}

func TestClone(t *testing.T) {
	o := object.New(object.P("a", 1))
	c := object.Clone(o)
	c.Set("b", 2)
	assert.Equal(t, 1, o.Len())
	assert.Equal(t, []string{"a", "b"}, object.Keys(c))
}

func TestHas(t *testing.T) {
	o := object.New[any](object.P[any]("a", nil))
	assert.True(t, object.Has(o, "a"))
	assert.False(t, object.Has(o, "b"))
}

func TestExtend(t *testing.T) {
	target := object.New[any](object.P[any]("key1", "something"))
	got := object.Extend(target,
		object.New[any](object.P[any]("key2", "something new"), object.P[any]("key3", "something else new")),
		object.New[any](object.P[any]("bla", "even more stuff")),
	)
	require.Same(t, target, got)
	assert.Equal(t, []string{"key1", "key2", "key3", "bla"}, object.Keys(got))
}

func TestExtendLaterSourcesWin(t *testing.T) {
	target := object.New(object.P("a", 1), object.P("b", 1))
	object.Extend(target, object.New(object.P("a", 2)), object.New(object.P("a", 3), object.P("c", 3)))
	assert.Equal(t, []string{"a", "b", "c"}, object.Keys(target))
	assert.Equal(t, []int{3, 1, 3}, object.Values(target))
}

func TestExtendNoSources(t *testing.T) {
	target := object.New(object.P("a", 1))
	assert.Same(t, target, object.Extend(target))
	assert.Equal(t, 1, target.Len())
}

func TestDefaults(t *testing.T) {
	target := object.New[any](object.P[any]("a", 1), object.P[any]("zero", 0))
	got := object.Defaults(target,
		object.New[any](object.P[any]("a", 10), object.P[any]("b", 2), object.P[any]("zero", 99)),
		object.New[any](object.P[any]("b", 20), object.P[any]("c", 3)),
	)
	require.Same(t, target, got)
	assert.Equal(t, []string{"a", "zero", "b", "c"}, object.Keys(got))
	assert.Equal(t, []any{1, 0, 2, 3}, object.Values(got))
}

func TestDefaultsDoesNotTouchSources(t *testing.T) {
	src := object.New(object.P("a", 1))
	object.Defaults(object.New[int](), src)
	assert.Equal(t, []string{"a"}, object.Keys(src))
}

func TestExtendNilTargetPanics(t *testing.T) {
	assert.Panics(t, func() {
		object.Extend[int](nil, object.New(object.P("a", 1)))
	})
}
