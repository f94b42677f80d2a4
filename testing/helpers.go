// Package testing provides test utilities for crate.
package testing

import (
	"github.com/zoobzio/crate"
)

// TestKey returns a valid 32-byte AES key for testing.
func TestKey() []byte {
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncryptor returns an AES encryptor configured for testing.
func TestEncryptor() crate.Encryptor {
	enc, err := crate.AES(TestKey())
	if err != nil {
		panic(err)
	}
	return enc
}

// TestPipeline returns a pipeline over the given codec with the test
// encryptor configured.
func TestPipeline(codec crate.Codec) *crate.Pipeline {
	return crate.NewPipeline(codec, crate.WithEncryptor(TestEncryptor()))
}

// SampleFile returns a small file value with a name and media type.
func SampleFile() *crate.File {
	return &crate.File{
		Name:     "secret.txt",
		MimeType: "text/plain",
		Content:  []byte("attack at dawn"),
	}
}

// SampleMap returns an ordered map with a nested value.
func SampleMap() *crate.Map {
	return crate.NewMap(
		crate.Entry{Key: "a", Value: float64(1)},
		crate.Entry{Key: "b", Value: map[string]any{"c": float64(2)}},
	)
}

// SampleSet returns a set of unique primitives.
func SampleSet() *crate.Set {
	return crate.NewSet("red", "green", "blue")
}

// Account is a sample struct for binding and object/json tests.
type Account struct {
	ID     string  `json:"id"`
	Owner  string  `json:"owner"`
	Credit float64 `json:"credit"`
}
