package crate

// Codec provides content-type aware marshaling for sealed envelopes.
// The codec serializes the Sealed container — metadata side-channel
// plus encrypted payload — for transport or storage; it places no
// constraints on the payload itself.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Sealed is the wire envelope a Pipeline produces: the metadata record
// traveling alongside the encrypted canonical bytes, plus an integrity
// digest of the ciphertext in "algorithm:hex" form.
type Sealed struct {
	Metadata Metadata `json:"metadata"`
	Payload  []byte   `json:"payload"`
	Digest   string   `json:"digest,omitempty"`
}
