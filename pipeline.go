package crate

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Pipeline composes the codec with encryption and envelope
// serialization. Seal runs value → Encode → Encrypt → digest → Codec
// marshal; Open inverts each step and verifies the digest before
// decrypting.
//
// Pipelines are safe for concurrent use. SetEncryptor may be called at
// any time to rotate keys; in-flight operations keep the encryptor
// they started with.
type Pipeline struct {
	codec Codec

	// Mutable configuration protected by mu
	mu        sync.RWMutex
	encryptor Encryptor

	// Immutable after construction
	digester  Digester
	digesters map[string]Digester
}

// PipelineOption configures a Pipeline at construction.
type PipelineOption func(*Pipeline)

// WithEncryptor sets the encryptor used by Seal and Open.
func WithEncryptor(enc Encryptor) PipelineOption {
	return func(p *Pipeline) {
		p.encryptor = enc
	}
}

// WithDigester sets the digester recorded in sealed envelopes.
// The default is Blake3.
func WithDigester(d Digester) PipelineOption {
	return func(p *Pipeline) {
		p.digester = d
		p.digesters[d.Algorithm()] = d
	}
}

// NewPipeline creates a Pipeline using codec for envelope
// serialization. An encryptor must be configured via WithEncryptor or
// SetEncryptor before the first Seal or Open.
func NewPipeline(codec Codec, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		codec:     codec,
		digester:  Blake3(),
		digesters: builtinDigesters(),
	}

	for _, opt := range opts {
		opt(p)
	}

	emitPipelineCreated(context.Background(), codec.ContentType())
	return p
}

// SetEncryptor replaces the pipeline's encryptor.
// Returns the pipeline for chaining. Safe for concurrent use.
func (p *Pipeline) SetEncryptor(enc Encryptor) *Pipeline {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.encryptor = enc
	return p
}

// currentEncryptor returns the configured encryptor or ErrMissingEncryptor.
func (p *Pipeline) currentEncryptor() (Encryptor, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.encryptor == nil {
		return nil, ErrMissingEncryptor
	}
	return p.encryptor, nil
}

// Seal encodes value, encrypts the canonical bytes, and marshals a
// Sealed envelope carrying the metadata record, the ciphertext, and an
// integrity digest of the ciphertext.
func (p *Pipeline) Seal(ctx context.Context, value any, name string, opts ...Option) ([]byte, error) {
	start := time.Now()
	emitSealStart(ctx, p.codec.ContentType(), name)

	var retErr error
	var retData []byte
	defer func() {
		emitSealComplete(ctx, p.codec.ContentType(), name,
			len(retData), time.Since(start), retErr)
	}()

	enc, err := p.currentEncryptor()
	if err != nil {
		retErr = err
		return nil, retErr
	}

	data, meta, err := Encode(value, name, opts...)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	ciphertext, err := enc.Encrypt(data)
	if err != nil {
		retErr = fmt.Errorf("encrypt: %w", err)
		return nil, retErr
	}

	sealed := Sealed{
		Metadata: meta,
		Payload:  ciphertext,
		Digest:   digestRef(p.digester, ciphertext),
	}

	retData, retErr = p.codec.Marshal(&sealed)
	if retErr != nil {
		retErr = fmt.Errorf("marshal envelope: %w", retErr)
		return nil, retErr
	}
	return retData, nil
}

// Open unmarshals a sealed envelope, verifies the payload digest,
// decrypts, and decodes. The reconstructed value and its metadata
// record are both returned; the record's UserMetadata survives the
// round trip untouched.
func (p *Pipeline) Open(ctx context.Context, data []byte) (any, Metadata, error) {
	start := time.Now()
	emitOpenStart(ctx, p.codec.ContentType())

	var retErr error
	var name string
	defer func() {
		emitOpenComplete(ctx, p.codec.ContentType(), name,
			len(data), time.Since(start), retErr)
	}()

	var sealed Sealed
	if err := p.codec.Unmarshal(data, &sealed); err != nil {
		retErr = fmt.Errorf("unmarshal envelope: %w", err)
		return nil, Metadata{}, retErr
	}
	name = sealed.Metadata.Name

	if sealed.Digest != "" {
		if err := verifyDigest(sealed.Digest, sealed.Payload, p.digesters); err != nil {
			retErr = err
			return nil, Metadata{}, retErr
		}
	}

	enc, err := p.currentEncryptor()
	if err != nil {
		retErr = err
		return nil, Metadata{}, retErr
	}

	plaintext, err := enc.Decrypt(sealed.Payload)
	if err != nil {
		retErr = fmt.Errorf("decrypt: %w", err)
		return nil, Metadata{}, retErr
	}

	value, err := Decode(plaintext, sealed.Metadata)
	if err != nil {
		retErr = err
		return nil, Metadata{}, retErr
	}

	return value, sealed.Metadata, nil
}
