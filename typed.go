package crate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

// DecodeAs decodes and asserts the result to T. The type parameter is
// advisory: the decoder's behavior is fully determined by the metadata,
// and a mismatch between T and the metadata-driven result is a caller
// error, reported rather than resolved.
func DecodeAs[T any](data []byte, meta Metadata) (T, error) {
	var zero T

	value, err := Decode(data, meta)
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, nil
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("decoded %T under tag %q does not satisfy requested type %T",
			value, meta.Type, zero)
	}
	return typed, nil
}

// Binding is a cached per-type helper for round-tripping plain structs
// through the object/json path. The record name defaults to the
// struct's type name.
type Binding[T any] struct {
	name string
}

// bindingKey identifies a cached binding by its Go type.
var (
	bindings   = make(map[reflect.Type]any)
	bindingsMu sync.RWMutex
)

// Bind returns the cached binding for struct type T, building it on
// first use. T's field metadata is scanned once and the type name
// becomes the default record name.
func Bind[T any]() *Binding[T] {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	bindingsMu.RLock()
	if cached, ok := bindings[typ]; ok {
		bindingsMu.RUnlock()
		return cached.(*Binding[T])
	}
	bindingsMu.RUnlock()

	// Slow path: build and cache with write-lock
	bindingsMu.Lock()
	defer bindingsMu.Unlock()

	// Double-check pattern
	if cached, ok := bindings[typ]; ok {
		return cached.(*Binding[T])
	}

	spec := sentinel.Scan[T]()
	name := spec.TypeName
	if name == "" {
		name = typ.Name()
	}

	b := &Binding[T]{name: name}
	bindings[typ] = b
	return b
}

// Reset clears the binding cache.
// This is primarily useful for test isolation.
func Reset() {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()
	bindings = make(map[reflect.Type]any)
}

// Name returns the record name the binding encodes under.
func (b *Binding[T]) Name() string {
	return b.name
}

// Encode encodes v through the object/json path under the binding's
// record name.
func (b *Binding[T]) Encode(v T, opts ...Option) ([]byte, Metadata, error) {
	return Encode(v, b.name, opts...)
}

// Decode reconstructs a T from bytes produced by Encode. The canonical
// bytes of an object/json record are the value's JSON serialization,
// so they unmarshal directly into T once the tags check out.
func (b *Binding[T]) Decode(data []byte, meta Metadata) (T, error) {
	var zero T

	if meta.Type != TypeObject {
		return zero, newDecodeError(ErrUnsupportedMetadata, meta,
			fmt.Errorf("binding for %s requires an object record", b.name))
	}
	switch meta.Subtype {
	case "", SubtypeJSON, SubtypeMap:
	default:
		return zero, newDecodeError(ErrUnsupportedMetadata, meta,
			fmt.Errorf("binding for %s cannot reconstruct subtype %q", b.name, meta.Subtype))
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, newDecodeError(ErrMalformedPayload, meta, err)
	}
	return out, nil
}
