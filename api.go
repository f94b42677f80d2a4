// Package crate provides a bidirectional, metadata-driven value codec
// with an optional sealed-envelope pipeline for encrypted transport.
//
// Encode reduces a value of arbitrary runtime shape to a flat byte
// sequence plus a small Metadata record. The record is the schema:
// it is generated at encode time, travels alongside the bytes as an
// opaque companion object, and is the only thing Decode needs to
// reconstruct the original value and its runtime type. No schema is
// shared in advance between the two halves.
//
// # Basic Usage
//
//	data, meta, _ := crate.Encode(42, "answer")
//	// data = []byte("42"), meta = {name: "answer", type: "number"}
//
//	value, _ := crate.Decode(data, meta)
//	// value = float64(42)
//
// # Value Categories
//
// The encoder classifies input with a closed dispatch, first match wins:
//
//   - nil → null (empty bytes)
//   - bool → boolean ("true"/"false")
//   - *big.Int → number/bigint (decimal text)
//   - native numerics → number (decimal text)
//   - string → string (verbatim UTF-8; base64 text is flagged with
//     subtype "base64" but never transformed)
//   - Int8Array ... Float64Array → fixed-array (little-endian element bytes)
//   - []byte → binary (raw bytes)
//   - File → file (content bytes, mimeType, filename)
//   - *Map → object/map (JSON object in entry order)
//   - *Set → object/set (JSON array of unique elements)
//   - anything else marshalable → object/json
//
// Func, chan, complex, and unsafe-pointer values are rejected with
// ErrUnsupportedInput. Decode dispatches solely on the metadata's
// type/subtype pair and fails hard with ErrUnsupportedMetadata on any
// tag it does not recognize; it never guesses.
//
// Both halves are pure, synchronous, and safe for concurrent use.
//
// # Sealed Pipeline
//
// Pipeline composes the codec with encryption and envelope serialization
// for values that leave the process. The codec itself never encrypts;
// crypto is consumed through the Encryptor interface.
//
//	p := crate.NewPipeline(json.New(), crate.WithEncryptor(enc))
//
//	sealed, _ := p.Seal(ctx, secret, "api-key")
//	value, meta, _ := p.Open(ctx, sealed)
//
// Seal encodes, encrypts the canonical bytes, records an integrity
// digest of the ciphertext, and marshals a Sealed envelope with the
// configured Codec. Open reverses each step and verifies the digest.
//
// # Codec Providers
//
// Envelope serialization is pluggable via the Codec interface:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - cbor - deterministic CBOR encoding (application/cbor)
//
// # Encryption Algorithms
//
// Built-in encryptors:
//
//   - AES(key) - AES-GCM symmetric encryption
//   - ChaCha20Poly1305(key) - XChaCha20-Poly1305 symmetric encryption
//   - Envelope(masterKey) - Envelope encryption with per-message data keys
//
// # Typed Bindings
//
// Bind caches a per-type helper for round-tripping plain structs through
// the object/json path, with the record name defaulted to the type name:
//
//	b := crate.Bind[Account]()
//	data, meta, _ := b.Encode(acct)
//	acct, _ = b.Decode(data, meta)
package crate
