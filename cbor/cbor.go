// Package cbor provides a deterministic CBOR codec implementation.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// The same envelope always produces identical bytes.
package cbor

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/zoobzio/crate"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Metadata's UserMetadata field is any-typed. The CBOR default
		// for any-typed targets is map[interface{}]interface{}, which
		// is incompatible with encoding/json and with the structural
		// equality the codec's round-trip law uses. Struct field
		// decoding is unaffected.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("cbor: decoder initialization failed: " + err.Error())
	}
}

// cborCodec implements crate.Codec for CBOR.
type cborCodec struct{}

// New returns a CBOR codec.
func New() crate.Codec {
	return &cborCodec{}
}

// ContentType returns the MIME type for CBOR.
func (c *cborCodec) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as deterministic CBOR.
func (c *cborCodec) Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (c *cborCodec) Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
