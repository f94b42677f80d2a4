package crate

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// Digester computes an integrity digest over a sealed payload.
type Digester interface {
	// Algorithm returns the digest's identifying name (e.g. "blake3").
	Algorithm() string

	// Sum returns the hex-encoded digest of data.
	Sum(data []byte) string
}

// blake3Digester implements BLAKE3-256 digests.
type blake3Digester struct{}

// Blake3 returns a BLAKE3-256 digester. This is the pipeline default.
func Blake3() Digester {
	return &blake3Digester{}
}

func (d *blake3Digester) Algorithm() string {
	return "blake3"
}

func (d *blake3Digester) Sum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// sha256Digester implements SHA-256 digests.
type sha256Digester struct{}

// SHA256 returns a SHA-256 digester.
func SHA256() Digester {
	return &sha256Digester{}
}

func (d *sha256Digester) Algorithm() string {
	return "sha256"
}

func (d *sha256Digester) Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// builtinDigesters returns the digesters Open can verify against,
// keyed by algorithm name.
func builtinDigesters() map[string]Digester {
	return map[string]Digester{
		"blake3": Blake3(),
		"sha256": SHA256(),
	}
}

// digestRef renders a digest in "algorithm:hex" reference form.
func digestRef(d Digester, data []byte) string {
	return d.Algorithm() + ":" + d.Sum(data)
}

// verifyDigest recomputes a "algorithm:hex" reference over data and
// compares in constant time. An unknown algorithm fails verification:
// skipping the check would defeat its purpose.
func verifyDigest(ref string, data []byte, digesters map[string]Digester) error {
	algo, want, ok := strings.Cut(ref, ":")
	if !ok {
		return fmt.Errorf("%w: malformed digest reference %q", ErrDigestMismatch, ref)
	}

	d, ok := digesters[algo]
	if !ok {
		return fmt.Errorf("%w: unknown digest algorithm %q", ErrDigestMismatch, algo)
	}

	got := d.Sum(data)
	if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
		return ErrDigestMismatch
	}
	return nil
}
