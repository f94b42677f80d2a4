package crate

import (
	"errors"
	"strings"
	"testing"
)

func TestDigesters_Algorithm(t *testing.T) {
	tests := []struct {
		d    Digester
		want string
	}{
		{Blake3(), "blake3"},
		{SHA256(), "sha256"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.d.Algorithm(); got != tt.want {
				t.Errorf("Algorithm() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDigesters_SumIsHex(t *testing.T) {
	for _, d := range []Digester{Blake3(), SHA256()} {
		sum := d.Sum([]byte("payload"))
		if len(sum) != 64 {
			t.Errorf("%s: Sum length = %d, want 64 hex chars", d.Algorithm(), len(sum))
		}
		if strings.ToLower(sum) != sum {
			t.Errorf("%s: Sum not lowercase hex: %q", d.Algorithm(), sum)
		}
	}
}

func TestSHA256_KnownVector(t *testing.T) {
	// SHA-256 of the empty input.
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := SHA256().Sum(nil); got != want {
		t.Errorf("Sum(nil) = %q, want %q", got, want)
	}
}

func TestDigestRef_Format(t *testing.T) {
	ref := digestRef(Blake3(), []byte("x"))
	if !strings.HasPrefix(ref, "blake3:") {
		t.Errorf("ref = %q, want blake3: prefix", ref)
	}
}

func TestVerifyDigest(t *testing.T) {
	payload := []byte("payload")
	digesters := builtinDigesters()

	ok := digestRef(Blake3(), payload)
	if err := verifyDigest(ok, payload, digesters); err != nil {
		t.Errorf("verifyDigest(valid) error: %v", err)
	}

	if err := verifyDigest(ok, []byte("tampered"), digesters); !errors.Is(err, ErrDigestMismatch) {
		t.Errorf("error = %v, want ErrDigestMismatch for tampered payload", err)
	}

	if err := verifyDigest("md5:abcd", payload, digesters); !errors.Is(err, ErrDigestMismatch) {
		t.Errorf("error = %v, want ErrDigestMismatch for unknown algorithm", err)
	}

	if err := verifyDigest("no-separator", payload, digesters); !errors.Is(err, ErrDigestMismatch) {
		t.Errorf("error = %v, want ErrDigestMismatch for malformed reference", err)
	}
}
