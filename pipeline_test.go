package crate_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/crate"
	jsoncodec "github.com/zoobzio/crate/json"
	cratetest "github.com/zoobzio/crate/testing"
)

func TestPipeline_SealOpen(t *testing.T) {
	p := cratetest.TestPipeline(jsoncodec.New())

	sealed, err := p.Seal(context.Background(), "top secret", "note")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	// The plaintext must not appear in the sealed envelope.
	if strings.Contains(string(sealed), "top secret") {
		t.Error("sealed envelope leaks plaintext")
	}

	value, meta, err := p.Open(context.Background(), sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if value != "top secret" {
		t.Errorf("value = %v, want original string", value)
	}
	if meta.Name != "note" || meta.Type != crate.TypeString {
		t.Errorf("metadata = %+v", meta)
	}
}

func TestPipeline_SealOpen_Map(t *testing.T) {
	p := cratetest.TestPipeline(jsoncodec.New())
	m := cratetest.SampleMap()

	sealed, err := p.Seal(context.Background(), m, "settings")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	value, _, err := p.Open(context.Background(), sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	restored := value.(*crate.Map)
	if !reflect.DeepEqual(restored.Entries(), m.Entries()) {
		t.Errorf("entries = %+v, want %+v", restored.Entries(), m.Entries())
	}
}

func TestPipeline_MissingEncryptor(t *testing.T) {
	p := crate.NewPipeline(jsoncodec.New())

	_, err := p.Seal(context.Background(), "v", "n")
	if !errors.Is(err, crate.ErrMissingEncryptor) {
		t.Errorf("Seal error = %v, want ErrMissingEncryptor", err)
	}
}

func TestPipeline_SetEncryptorChaining(t *testing.T) {
	p := crate.NewPipeline(jsoncodec.New()).SetEncryptor(cratetest.TestEncryptor())

	if _, err := p.Seal(context.Background(), "v", "n"); err != nil {
		t.Errorf("Seal after SetEncryptor error: %v", err)
	}
}

func TestPipeline_UnsupportedInputPropagates(t *testing.T) {
	p := cratetest.TestPipeline(jsoncodec.New())

	_, err := p.Seal(context.Background(), func() {}, "bad")
	if !errors.Is(err, crate.ErrUnsupportedInput) {
		t.Errorf("error = %v, want ErrUnsupportedInput", err)
	}
}

func TestPipeline_TamperedPayload(t *testing.T) {
	p := cratetest.TestPipeline(jsoncodec.New())

	sealed, err := p.Seal(context.Background(), "secret", "n")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	var env crate.Sealed
	if err := json.Unmarshal(sealed, &env); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	env.Payload[0] ^= 0xff
	tampered, err := json.Marshal(&env)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	_, _, err = p.Open(context.Background(), tampered)
	if !errors.Is(err, crate.ErrDigestMismatch) {
		t.Errorf("error = %v, want ErrDigestMismatch", err)
	}
}

func TestPipeline_WrongKey(t *testing.T) {
	sealer := cratetest.TestPipeline(jsoncodec.New())

	otherKey, _ := crate.AES([]byte("another-32-byte-key-for-aes-256!"))
	opener := crate.NewPipeline(jsoncodec.New(), crate.WithEncryptor(otherKey))

	sealed, err := sealer.Seal(context.Background(), "secret", "n")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, _, err = opener.Open(context.Background(), sealed)
	if !errors.Is(err, crate.ErrDecryptionFailed) {
		t.Errorf("error = %v, want ErrDecryptionFailed", err)
	}
}

func TestPipeline_WithDigester(t *testing.T) {
	p := crate.NewPipeline(jsoncodec.New(),
		crate.WithEncryptor(cratetest.TestEncryptor()),
		crate.WithDigester(crate.SHA256()),
	)

	sealed, err := p.Seal(context.Background(), "v", "n")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	var env crate.Sealed
	if err := json.Unmarshal(sealed, &env); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !strings.HasPrefix(env.Digest, "sha256:") {
		t.Errorf("digest = %q, want sha256: prefix", env.Digest)
	}

	if _, _, err := p.Open(context.Background(), sealed); err != nil {
		t.Errorf("Open error: %v", err)
	}
}

func TestPipeline_UserMetadataSurvives(t *testing.T) {
	p := cratetest.TestPipeline(jsoncodec.New())

	sealed, err := p.Seal(context.Background(), "v", "n",
		crate.WithUserMetadata(map[string]any{"owner": "alice"}))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, meta, err := p.Open(context.Background(), sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	aux, ok := meta.UserMetadata.(map[string]any)
	if !ok || aux["owner"] != "alice" {
		t.Errorf("userMetaData = %v, want passthrough", meta.UserMetadata)
	}
}

func TestPipeline_GarbageEnvelope(t *testing.T) {
	p := cratetest.TestPipeline(jsoncodec.New())

	_, _, err := p.Open(context.Background(), []byte("not an envelope"))
	if err == nil {
		t.Error("Open should fail on a malformed envelope")
	}
}
