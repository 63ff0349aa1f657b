package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-underbar/arr"
)

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i % 97
	}
	return items
}

func BenchmarkUniq(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Uniq(items)
	}
}

func BenchmarkSortByKey(b *testing.B) {
	rows := make([]map[string]any, 1_000)
	for i := range rows {
		rows[i] = map[string]any{"k": (i * 7919) % 1_000}
	}
	by := arr.ByKey[map[string]any]("k")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.SortBy(arr.Shuffle(rows), by)
	}
}

func BenchmarkIntersection(b *testing.B) {
	a, c := makeInts(10_000), makeInts(5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Intersection(a, c)
	}
}

func BenchmarkFlatten(b *testing.B) {
	nested := []any{1, []any{2, []any{3, []int{4, 5}}}, []any{[]any{[]any{6}}}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Flatten(nested)
	}
}
