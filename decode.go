package crate

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// Decode reconstructs the value a byte sequence was encoded from,
// dispatching solely on the metadata's type/subtype pair. The same
// bytes mean different things under different records — the digits
// "42" are a string under one tag and a number under another — so
// Decode never interprets bytes without metadata and never guesses
// when a tag is unknown.
//
// Returned dynamic types per tag: nil, bool, float64, *big.Int,
// string, []byte, the typed-array kind named by arrayType, *File,
// *Map, *Set, or any (plain JSON values).
//
// An unrecognized tag fails hard with ErrUnsupportedMetadata. Bytes
// that cannot be inverted under a recognized tag fail with
// ErrMalformedPayload.
func Decode(data []byte, meta Metadata) (any, error) {
	start := time.Now()
	emitDecodeStart(context.Background(), meta.Name, meta.Type, meta.Subtype)

	value, err := decode(data, meta)

	emitDecodeComplete(context.Background(), meta.Name, meta.Type, meta.Subtype,
		len(data), time.Since(start), err)
	return value, err
}

func decode(data []byte, meta Metadata) (any, error) {
	switch meta.Type {
	case TypeNull:
		// Absent and explicitly-null collapsed at encode time; the
		// reconstruction is always nil.
		return nil, nil

	case TypeBoolean:
		switch string(data) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, newDecodeError(ErrMalformedPayload, meta,
			fmt.Errorf("%q is not a boolean", data))

	case TypeNumber:
		switch meta.Subtype {
		case SubtypeBigint:
			n, ok := new(big.Int).SetString(string(data), 10)
			if !ok {
				return nil, newDecodeError(ErrMalformedPayload, meta,
					fmt.Errorf("%q is not a decimal integer", data))
			}
			return n, nil
		case "":
			f, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return nil, newDecodeError(ErrMalformedPayload, meta, err)
			}
			return f, nil
		}
		return nil, newDecodeError(ErrUnsupportedMetadata, meta, nil)

	case TypeString:
		// Subtype "base64" is informational only; the stored bytes are
		// the original text and are returned verbatim.
		switch meta.Subtype {
		case "", SubtypeBase64:
			return string(data), nil
		}
		return nil, newDecodeError(ErrUnsupportedMetadata, meta, nil)

	case TypeFixedArray:
		return decodeFixedArray(data, meta)

	case TypeBinary:
		return append([]byte(nil), data...), nil

	case TypeFile:
		f := &File{
			MimeType: meta.MimeType,
			Content:  append([]byte(nil), data...),
		}
		if meta.Name != "" && meta.Name != DefaultName {
			f.Name = meta.Name
		}
		return f, nil

	case TypeObject:
		switch meta.Subtype {
		case SubtypeMap:
			return decodeOrderedMap(data, meta)
		case SubtypeSet:
			var elements []any
			if err := json.Unmarshal(data, &elements); err != nil {
				return nil, newDecodeError(ErrMalformedPayload, meta, err)
			}
			return NewSet(elements...), nil
		case "", SubtypeJSON:
			var v any
			if err := json.Unmarshal(data, &v); err != nil {
				return nil, newDecodeError(ErrMalformedPayload, meta, err)
			}
			return v, nil
		}
		return nil, newDecodeError(ErrUnsupportedMetadata, meta, nil)
	}

	return nil, newDecodeError(ErrUnsupportedMetadata, meta, nil)
}

// decodeFixedArray reinterprets raw little-endian bytes as the typed
// array named by the metadata's arrayType.
func decodeFixedArray(data []byte, meta Metadata) (any, error) {
	width := meta.ArrayType.Width()
	if width == 0 {
		return nil, newDecodeError(ErrUnsupportedMetadata, meta, nil)
	}
	if len(data)%width != 0 {
		return nil, newDecodeError(ErrMalformedPayload, meta,
			fmt.Errorf("%d bytes do not divide into %d-byte elements", len(data), width))
	}

	n := len(data) / width
	var out any
	switch meta.ArrayType {
	case ArrayInt8:
		out = make(Int8Array, n)
	case ArrayUint8:
		out = make(Uint8Array, n)
	case ArrayInt16:
		out = make(Int16Array, n)
	case ArrayUint16:
		out = make(Uint16Array, n)
	case ArrayInt32:
		out = make(Int32Array, n)
	case ArrayUint32:
		out = make(Uint32Array, n)
	case ArrayInt64:
		out = make(Int64Array, n)
	case ArrayUint64:
		out = make(Uint64Array, n)
	case ArrayFloat32:
		out = make(Float32Array, n)
	case ArrayFloat64:
		out = make(Float64Array, n)
	}

	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, out); err != nil {
		return nil, newDecodeError(ErrMalformedPayload, meta, err)
	}
	return out, nil
}

// decodeOrderedMap parses a JSON object token by token so entry order
// survives reconstruction. Unmarshaling into map[string]any would
// discard it.
func decodeOrderedMap(data []byte, meta Metadata) (*Map, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, newDecodeError(ErrMalformedPayload, meta, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, newDecodeError(ErrMalformedPayload, meta,
			fmt.Errorf("expected JSON object, found %v", tok))
	}

	m := NewMap()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, newDecodeError(ErrMalformedPayload, meta, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, newDecodeError(ErrMalformedPayload, meta,
				fmt.Errorf("expected object key, found %v", keyTok))
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, newDecodeError(ErrMalformedPayload, meta, err)
		}
		m.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, newDecodeError(ErrMalformedPayload, meta, err)
	}
	return m, nil
}
