// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// secretCipher is the private AES-256-GCM implementation of [SecretCipher].
type secretCipher struct{}

// NewSecretCipher constructs the AES-GCM [SecretCipher] used by the
// credential verifier. The same blob format is produced by the backend
// when a tenant password is provisioned, so the two sides stay
// interoperable: base64(12-byte nonce ‖ ciphertext with 128-bit tag).
func NewSecretCipher() SecretCipher {
	return &secretCipher{}
}

// Seal implements [SecretCipher]. Every call samples a fresh random nonce
// from the OS CSPRNG, so two encryptions of the same plaintext under the
// same key never produce the same blob.
func (c *secretCipher) Seal(plaintext, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Open can split it out again.
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [SecretCipher]. It base64-decodes the blob, splits the
// first 12 bytes as the nonce, and decrypts the remainder with AEAD
// verification.
func (c *secretCipher) Open(blob string, key []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrMalformed, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return nil, fmt.Errorf("%w: blob shorter than nonce", ErrMalformed)
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	// A tag mismatch here means a tampered record or the wrong key, not a
	// wrong user password. Surface that distinctly.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIntegrity, err)
	}

	return plaintext, nil
}
