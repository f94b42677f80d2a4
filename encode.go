package crate

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"
)

// Option configures a single encode operation.
type Option func(*encodeConfig)

type encodeConfig struct {
	userMetadata any
}

// WithUserMetadata attaches caller-supplied auxiliary data to the
// produced metadata record. The codec passes it through unmodified and
// never interprets it.
func WithUserMetadata(v any) Option {
	return func(c *encodeConfig) {
		c.userMetadata = v
	}
}

// Encode reduces value to a canonical byte sequence and a Metadata
// record describing how to invert the transformation. name is a
// human-readable label carried in the record; it is not required to be
// unique.
//
// Classification is a closed dispatch in priority order; see the
// package documentation for the full table. Encode is deterministic
// for deterministic inputs, holds no state, and performs no I/O. The
// only failure is ErrUnsupportedInput.
func Encode(value any, name string, opts ...Option) ([]byte, Metadata, error) {
	var cfg encodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	emitEncodeStart(context.Background(), name)

	data, meta, err := encode(value, name)
	meta.UserMetadata = cfg.userMetadata

	emitEncodeComplete(context.Background(), name, meta.Type, meta.Subtype,
		len(data), time.Since(start), err)
	if err != nil {
		return nil, Metadata{}, err
	}
	return data, meta, nil
}

// encode performs the classification dispatch. Ordering is load-bearing
// where categories overlap: typed arrays before raw buffers, files
// before the generic object fallback.
func encode(value any, name string) ([]byte, Metadata, error) {
	meta := Metadata{Name: name}

	switch v := value.(type) {
	case nil:
		meta.Type = TypeNull
		return []byte{}, meta, nil

	case bool:
		meta.Type = TypeBoolean
		return []byte(strconv.FormatBool(v)), meta, nil

	case *big.Int:
		if v == nil {
			meta.Type = TypeNull
			return []byte{}, meta, nil
		}
		meta.Type = TypeNumber
		meta.Subtype = SubtypeBigint
		return []byte(v.String()), meta, nil

	case big.Int:
		meta.Type = TypeNumber
		meta.Subtype = SubtypeBigint
		return []byte(v.String()), meta, nil

	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		meta.Type = TypeNumber
		return []byte(formatNumber(v)), meta, nil

	case string:
		meta.Type = TypeString
		if looksBase64(v) {
			meta.Subtype = SubtypeBase64
		}
		return []byte(v), meta, nil

	case Int8Array, Uint8Array, Int16Array, Uint16Array,
		Int32Array, Uint32Array, Int64Array, Uint64Array,
		Float32Array, Float64Array:
		arr := v.(fixedArray)
		var buf bytes.Buffer
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			return nil, Metadata{}, newEncodeError(ErrUnsupportedInput, name, fmt.Sprintf("%T", value), err)
		}
		meta.Type = TypeFixedArray
		meta.ArrayType = arr.arrayType()
		return buf.Bytes(), meta, nil

	case []byte:
		meta.Type = TypeBinary
		return append([]byte(nil), v...), meta, nil

	case File:
		return encodeFile(&v, meta)

	case *File:
		if v == nil {
			meta.Type = TypeNull
			return []byte{}, meta, nil
		}
		return encodeFile(v, meta)

	case *Map:
		if v == nil {
			meta.Type = TypeNull
			return []byte{}, meta, nil
		}
		data, err := marshalOrderedObject(v.entries)
		if err != nil {
			return nil, Metadata{}, newEncodeError(ErrUnsupportedInput, name, fmt.Sprintf("%T", value), err)
		}
		meta.Type = TypeObject
		meta.Subtype = SubtypeMap
		return data, meta, nil

	case *Set:
		if v == nil {
			meta.Type = TypeNull
			return []byte{}, meta, nil
		}
		data, err := json.Marshal(v.Elements())
		if err != nil {
			return nil, Metadata{}, newEncodeError(ErrUnsupportedInput, name, fmt.Sprintf("%T", value), err)
		}
		meta.Type = TypeObject
		meta.Subtype = SubtypeSet
		return data, meta, nil

	default:
		return encodeObject(value, name, meta)
	}
}

// encodeFile emits the file's raw content. The record name is the
// filename when one is present, otherwise the caller's label stands.
func encodeFile(f *File, meta Metadata) ([]byte, Metadata, error) {
	meta.Type = TypeFile
	meta.MimeType = f.MimeType
	if f.Name != "" {
		meta.Name = f.Name
	}
	return append([]byte(nil), f.Content...), meta, nil
}

// encodeObject is the JSON fallback for structured values. Kinds that
// JSON cannot represent are rejected before marshaling so the caller
// gets a classification error rather than a serialization one.
func encodeObject(value any, name string, meta Metadata) ([]byte, Metadata, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128,
		reflect.UnsafePointer, reflect.Uintptr:
		return nil, Metadata{}, newEncodeError(ErrUnsupportedInput, name, fmt.Sprintf("%T", value), nil)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, Metadata{}, newEncodeError(ErrUnsupportedInput, name, fmt.Sprintf("%T", value), err)
	}

	meta.Type = TypeObject
	meta.Subtype = SubtypeJSON
	return data, meta, nil
}

// formatNumber renders a native numeric as shortest decimal text.
func formatNumber(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return ""
}

// looksBase64 reports whether s is plausibly standard base64 text.
// The empty string is excluded: flagging it would add noise for no
// information. The flag is informational only; the string's own bytes
// are stored either way.
func looksBase64(s string) bool {
	if s == "" || len(s)%4 != 0 {
		return false
	}
	_, err := base64.StdEncoding.Strict().DecodeString(s)
	return err == nil
}

// marshalOrderedObject writes entries as a JSON object in insertion
// order. encoding/json alone cannot do this: a Go map loses order and
// a struct needs a schema, which is exactly what the codec does not
// have.
func marshalOrderedObject(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
