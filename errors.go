package crate

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedInput indicates the input value's runtime shape
	// matches no known category. Not retryable; the caller must
	// transform the value into a supported shape first.
	ErrUnsupportedInput = errors.New("unsupported input type")

	// ErrUnsupportedMetadata indicates a metadata record names a
	// type/subtype combination the decoder does not recognize,
	// including records corrupted or produced by an incompatible codec
	// version. Not retryable; signals data integrity or version skew.
	ErrUnsupportedMetadata = errors.New("unsupported metadata type")

	// ErrMalformedPayload indicates the byte sequence cannot be
	// inverted under a recognized tag: non-boolean text under
	// "boolean", non-decimal digits under "bigint", a byte count that
	// does not divide by the element width under "fixed-array", or
	// invalid JSON under "object".
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrMissingEncryptor indicates a pipeline operation required an
	// encryptor that was never configured.
	ErrMissingEncryptor = errors.New("missing encryptor")

	// ErrDigestMismatch indicates a sealed envelope's payload does not
	// match its recorded integrity digest.
	ErrDigestMismatch = errors.New("digest mismatch")
)

// EncodeError represents an encode-time failure. It wraps a sentinel
// error with the record name and the Go type that was rejected.
type EncodeError struct {
	Err    error  // Underlying sentinel error (ErrUnsupportedInput)
	Name   string // Record name passed to Encode
	GoType string // Runtime type of the rejected value
	Cause  error  // Original error from serialization, if any
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s (record %q): %v", e.Err.Error(), e.GoType, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s %s (record %q)", e.Err.Error(), e.GoType, e.Name)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError represents a decode-time failure. It wraps a sentinel
// error with the metadata tags that selected the failing path.
type DecodeError struct {
	Err     error   // Underlying sentinel error
	Name    string  // Record name from the metadata
	Type    Type    // Primary tag from the metadata
	Subtype Subtype // Subtype from the metadata
	Cause   error   // Original error from parsing, if any
}

func (e *DecodeError) Error() string {
	tag := string(e.Type)
	if e.Subtype != "" {
		tag += "/" + string(e.Subtype)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s %q (record %q): %v", e.Err.Error(), tag, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s %q (record %q)", e.Err.Error(), tag, e.Name)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// newEncodeError creates an EncodeError for unsupported or unserializable input.
func newEncodeError(sentinel error, name, goType string, cause error) error {
	return &EncodeError{
		Err:    sentinel,
		Name:   name,
		GoType: goType,
		Cause:  cause,
	}
}

// newDecodeError creates a DecodeError for unrecognized tags or corrupt payloads.
func newDecodeError(sentinel error, meta Metadata, cause error) error {
	return &DecodeError{
		Err:     sentinel,
		Name:    meta.Name,
		Type:    meta.Type,
		Subtype: meta.Subtype,
		Cause:   cause,
	}
}
