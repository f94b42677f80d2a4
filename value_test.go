package crate

import (
	"reflect"
	"testing"
)

func TestMap_PreservesInsertionOrder(t *testing.T) {
	m := NewMap(
		Entry{Key: "z", Value: 1},
		Entry{Key: "a", Value: 2},
		Entry{Key: "m", Value: 3},
	)

	want := []string{"z", "a", "m"}
	entries := m.Entries()
	if len(entries) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Key != want[i] {
			t.Errorf("entry %d key = %q, want %q", i, e.Key, want[i])
		}
	}
}

func TestMap_SetUpdatesInPlace(t *testing.T) {
	m := NewMap()
	m.Set("a", 1).Set("b", 2).Set("a", 10)

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}

	entries := m.Entries()
	if entries[0].Key != "a" || entries[0].Value != 10 {
		t.Errorf("entry 0 = %+v, want {a 10}", entries[0])
	}

	v, ok := m.Get("a")
	if !ok || v != 10 {
		t.Errorf("Get(a) = %v, %v, want 10, true", v, ok)
	}
}

func TestMap_GetMissing(t *testing.T) {
	m := NewMap(Entry{Key: "a", Value: 1})

	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) should report absence")
	}
}

func TestMap_EntriesReturnsCopy(t *testing.T) {
	m := NewMap(Entry{Key: "a", Value: 1})

	entries := m.Entries()
	entries[0].Value = 99

	if v, _ := m.Get("a"); v != 1 {
		t.Errorf("mutating Entries() copy changed the map: Get(a) = %v", v)
	}
}

func TestSet_DeduplicatesPreservingOrder(t *testing.T) {
	s := NewSet("b", "a", "b", "c", "a")

	want := []any{"b", "a", "c"}
	if !reflect.DeepEqual(s.Elements(), want) {
		t.Errorf("Elements() = %v, want %v", s.Elements(), want)
	}
}

func TestSet_StructuralUniqueness(t *testing.T) {
	s := NewSet(
		map[string]any{"x": 1},
		map[string]any{"x": 1},
		map[string]any{"x": 2},
	)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(map[string]any{"x": 1}) {
		t.Error("Has() should find a structurally equal element")
	}
	if s.Has(map[string]any{"x": 3}) {
		t.Error("Has() should not find an absent element")
	}
}
