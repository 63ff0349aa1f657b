package arr_test

import (
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hasbyte1/go-underbar/arr"
)

type address struct {
	City     string `json:"city"`
	Postcode string `json:"postcode,omitempty"`
}

type user struct {
	Name    string   `json:"name"`
	Address *address `json:"address"`
	Tags    []string
	secret  string
}

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
		},
		"score": 42,
	}
}

func TestPropertyMap(t *testing.T) {
	m := makeNested()
	if v, ok := arr.Property(m, "user.address.city"); !ok || v != "London" {
		t.Fatalf("Property city = %v, %v; want London, true", v, ok)
	}
	if v, ok := arr.Property(m, "score"); !ok || v != 42 {
		t.Fatalf("Property score = %v, %v; want 42, true", v, ok)
	}
	if _, ok := arr.Property(m, "user.missing"); ok {
		t.Fatal("Property on missing key should return false")
	}
	if _, ok := arr.Property(m, "score.deeper"); ok {
		t.Fatal("Property through a scalar should return false")
	}
}

func TestPropertyLiteralDottedKey(t *testing.T) {
	m := map[string]any{"a.b": 1, "a": map[string]any{"b": 2, "c.d": 3}}
	if v, ok := arr.Property(m, "a.b"); !ok || v != 1 {
		t.Fatalf("Property(a.b) = %v, %v; want 1, true", v, ok)
	}
	if v, ok := arr.Property(m, "a.c.d"); !ok || v != 3 {
		t.Fatalf("Property(a.c.d) = %v, %v; want 3, true", v, ok)
	}
	got := arr.PluckKey([]map[string]any{{"a.b": 1}, {"a": map[string]any{"b": 2}}}, "a.b")
	assertSlice(t, got, []any{1, 2})
}

func TestPropertyTypedMap(t *testing.T) {
	m := map[string]int{"a": 1}
	if v, ok := arr.Property(m, "a"); !ok || v != 1 {
		t.Fatalf("Property = %v, %v; want 1, true", v, ok)
	}
}

func TestPropertyStruct(t *testing.T) {
	u := user{Name: "Bob", Address: &address{City: "Paris"}, Tags: []string{"x", "y"}, secret: "s"}

	cases := map[string]any{
		"Name":         "Bob",
		"name":         "Bob",
		"address.city": "Paris",
		"Address.City": "Paris",
		"tags.1":       "y",
	}
	for path, want := range cases {
		if v, ok := arr.Property(u, path); !ok || v != want {
			t.Fatalf("Property(%q) = %v, %v; want %v", path, v, ok, want)
		}
		if v, ok := arr.Property(&u, path); !ok || v != want {
			t.Fatalf("Property(&u, %q) = %v, %v; want %v", path, v, ok, want)
		}
	}
	if arr.HasProperty(u, "secret") {
		t.Fatal("unexported fields must not be visible")
	}
	if arr.HasProperty(u, "tags.9") {
		t.Fatal("out-of-range index must not be visible")
	}
}

func TestPropertyNilPointer(t *testing.T) {
	u := user{Name: "Bob"}
	if arr.HasProperty(u, "address.city") {
		t.Fatal("Property through a nil pointer should return false")
	}
	if arr.HasProperty(nil, "x") {
		t.Fatal("Property on nil should return false")
	}
}

func TestPropertyOrderedMap(t *testing.T) {
	inner := orderedmap.New[string, any]()
	inner.Set("city", "Oslo")
	outer := orderedmap.New[string, any]()
	outer.Set("address", inner)

	if v, ok := arr.Property(outer, "address.city"); !ok || v != "Oslo" {
		t.Fatalf("Property = %v, %v; want Oslo, true", v, ok)
	}
	if arr.HasProperty(outer, "nope") {
		t.Fatal("missing ordered-map key should return false")
	}
}
