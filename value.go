package crate

import "reflect"

// Fixed-width numeric array kinds. Each is a distinct named slice type
// so the encoder can tell a typed array from a raw buffer: []byte is
// binary, Uint8Array is a fixed-array of u8 elements. The distinction
// matters because both carry the same bytes but decode differently.
type (
	Int8Array    []int8
	Uint8Array   []uint8
	Int16Array   []int16
	Uint16Array  []uint16
	Int32Array   []int32
	Uint32Array  []uint32
	Int64Array   []int64
	Uint64Array  []uint64
	Float32Array []float32
	Float64Array []float64
)

func (Int8Array) arrayType() ArrayType    { return ArrayInt8 }
func (Uint8Array) arrayType() ArrayType   { return ArrayUint8 }
func (Int16Array) arrayType() ArrayType   { return ArrayInt16 }
func (Uint16Array) arrayType() ArrayType  { return ArrayUint16 }
func (Int32Array) arrayType() ArrayType   { return ArrayInt32 }
func (Uint32Array) arrayType() ArrayType  { return ArrayUint32 }
func (Int64Array) arrayType() ArrayType   { return ArrayInt64 }
func (Uint64Array) arrayType() ArrayType  { return ArrayUint64 }
func (Float32Array) arrayType() ArrayType { return ArrayFloat32 }
func (Float64Array) arrayType() ArrayType { return ArrayFloat64 }

// fixedArray is the closed set of typed-array kinds above.
type fixedArray interface {
	arrayType() ArrayType
}

// File is a binary object annotated with a MIME-style content type and
// an optional filename.
type File struct {
	Name     string
	MimeType string
	Content  []byte
}

// Entry is one key→value association of a Map.
type Entry struct {
	Key   string
	Value any
}

// Map is an insertion-ordered container of unique key→value
// associations. Go's native map is unordered and therefore encodes
// through the plain object/json path instead; use Map when entry
// order must survive a round trip.
type Map struct {
	entries []Entry
	index   map[string]int
}

// NewMap returns a Map holding the given entries in order. A repeated
// key updates the existing entry in place.
func NewMap(entries ...Entry) *Map {
	m := &Map{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set inserts or updates a key, preserving the position of an existing
// key. Returns the map for chaining.
func (m *Map) Set(key string, value any) *Map {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return m
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
	return m
}

// Get returns the value for key and whether it is present.
func (m *Map) Get(key string) (any, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Set is an ordered container of structurally unique elements.
// Uniqueness is decided by reflect.DeepEqual, so elements that arrive
// from a JSON round trip (maps, slices, primitives) compare usefully.
type Set struct {
	elements []any
}

// NewSet returns a Set holding the given elements with duplicates
// removed, first occurrence winning.
func NewSet(elements ...any) *Set {
	s := &Set{}
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// Add appends an element unless an equal one is already present.
// Returns the set for chaining.
func (s *Set) Add(element any) *Set {
	if !s.Has(element) {
		s.elements = append(s.elements, element)
	}
	return s
}

// Has returns true if an element equal to v is present.
func (s *Set) Has(v any) bool {
	for _, e := range s.elements {
		if reflect.DeepEqual(e, v) {
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.elements)
}

// Elements returns a copy of the elements in insertion order.
func (s *Set) Elements() []any {
	out := make([]any, len(s.elements))
	copy(out, s.elements)
	return out
}
