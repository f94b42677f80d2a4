package crate

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Encryption errors.
var (
	ErrInvalidKeySize   = errors.New("invalid key size")
	ErrCiphertextShort  = errors.New("ciphertext too short")
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Encryptor handles encryption/decryption of canonical byte sequences.
// The codec never calls an Encryptor itself; the Pipeline composes one
// around Encode/Decode.
type Encryptor interface {
	// Encrypt encrypts plaintext and returns ciphertext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext and returns plaintext.
	Decrypt(ciphertext []byte) ([]byte, error)
}

// aeadEncryptor implements nonce-prefixed AEAD encryption. AES-GCM and
// XChaCha20-Poly1305 share this shape.
type aeadEncryptor struct {
	aead cipher.AEAD
}

// AES returns an AES-GCM encryptor.
// Key must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256.
func AES(key []byte) (Encryptor, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &aeadEncryptor{aead: gcm}, nil
}

// ChaCha20Poly1305 returns an XChaCha20-Poly1305 encryptor.
// Key must be exactly 32 bytes. The extended 24-byte nonce makes
// random nonces safe at any message volume.
func ChaCha20Poly1305(key []byte) (Encryptor, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, chacha20poly1305.KeySize, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	return &aeadEncryptor{aead: aead}, nil
}

func (e *aeadEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend nonce to ciphertext
	return e.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (e *aeadEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	nonceSize := e.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrCiphertextShort
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := e.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

// envelopeEncryptor implements envelope encryption.
// A random data key is generated per operation, encrypted with the
// master key, and prepended to the ciphertext.
type envelopeEncryptor struct {
	masterGCM   cipher.AEAD
	dataKeySize int
}

// Envelope returns an envelope encryptor using a master key.
// Master key must be 16, 24, or 32 bytes.
func Envelope(masterKey []byte) (Encryptor, error) {
	if len(masterKey) != 16 && len(masterKey) != 24 && len(masterKey) != 32 {
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(masterKey))
	}

	block, err := aes.NewCipher(masterKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &envelopeEncryptor{
		masterGCM:   gcm,
		dataKeySize: 32, // AES-256 data keys
	}, nil
}

func (e *envelopeEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	// Generate random data key
	dataKey := make([]byte, e.dataKeySize)
	if _, err := io.ReadFull(rand.Reader, dataKey); err != nil {
		return nil, err
	}

	// Encrypt plaintext with data key
	dataBlock, err := aes.NewCipher(dataKey)
	if err != nil {
		return nil, err
	}

	dataGCM, err := cipher.NewGCM(dataBlock)
	if err != nil {
		return nil, err
	}

	dataNonce := make([]byte, dataGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, dataNonce); err != nil {
		return nil, err
	}

	encryptedData := dataGCM.Seal(dataNonce, dataNonce, plaintext, nil)

	// Encrypt data key with master key
	masterNonce := make([]byte, e.masterGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, masterNonce); err != nil {
		return nil, err
	}

	encryptedKey := e.masterGCM.Seal(masterNonce, masterNonce, dataKey, nil)

	// Format: [2 bytes key len][encrypted key][encrypted data]
	if len(encryptedKey) > 65535 {
		return nil, errors.New("encrypted key exceeds maximum length")
	}
	keyLen := uint16(len(encryptedKey)) // #nosec G115 -- bounds checked above
	result := make([]byte, 2+len(encryptedKey)+len(encryptedData))
	result[0] = byte(keyLen >> 8)
	result[1] = byte(keyLen)
	copy(result[2:], encryptedKey)
	copy(result[2+len(encryptedKey):], encryptedData)

	return result, nil
}

func (e *envelopeEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 2 {
		return nil, ErrCiphertextShort
	}

	// Parse key length
	keyLen := int(uint16(ciphertext[0])<<8 | uint16(ciphertext[1]))
	if len(ciphertext) < 2+keyLen {
		return nil, ErrCiphertextShort
	}

	encryptedKey := ciphertext[2 : 2+keyLen]
	encryptedData := ciphertext[2+keyLen:]

	// Decrypt data key with master key
	masterNonceSize := e.masterGCM.NonceSize()
	if len(encryptedKey) < masterNonceSize {
		return nil, ErrCiphertextShort
	}

	masterNonce := encryptedKey[:masterNonceSize]
	encryptedKey = encryptedKey[masterNonceSize:]

	dataKey, err := e.masterGCM.Open(nil, masterNonce, encryptedKey, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data key: %w", ErrDecryptionFailed, err)
	}

	// Decrypt data with data key
	dataBlock, err := aes.NewCipher(dataKey)
	if err != nil {
		return nil, err
	}

	dataGCM, err := cipher.NewGCM(dataBlock)
	if err != nil {
		return nil, err
	}

	dataNonceSize := dataGCM.NonceSize()
	if len(encryptedData) < dataNonceSize {
		return nil, ErrCiphertextShort
	}

	dataNonce := encryptedData[:dataNonceSize]
	encryptedData = encryptedData[dataNonceSize:]

	plaintext, err := dataGCM.Open(nil, dataNonce, encryptedData, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
