package msgpack

import (
	"bytes"
	"testing"

	"github.com/zoobzio/crate"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/msgpack")
	}
}

func TestMarshalUnmarshal_Sealed(t *testing.T) {
	c := New()

	original := crate.Sealed{
		Metadata: crate.Metadata{Name: "note", Type: crate.TypeString, Subtype: crate.SubtypeBase64},
		Payload:  []byte{1, 2, 3},
		Digest:   "blake3:abcd",
	}

	data, err := c.Marshal(&original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored crate.Sealed
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Metadata != original.Metadata {
		t.Errorf("metadata = %+v, want %+v", restored.Metadata, original.Metadata)
	}
	if !bytes.Equal(restored.Payload, original.Payload) {
		t.Errorf("payload = %v, want %v", restored.Payload, original.Payload)
	}
	if restored.Digest != original.Digest {
		t.Errorf("digest = %q, want %q", restored.Digest, original.Digest)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v crate.Sealed
	err := c.Unmarshal([]byte{0xc1}, &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
