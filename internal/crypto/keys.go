// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for passphrase-derived keys, following the OWASP
// (2024) recommendation: 1 iteration, 64 MiB memory, 4 threads, 256-bit
// output.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// KeyFromBase64 decodes a base64-encoded symmetric key from configuration
// and checks that it is a valid AES key size. Key provisioning itself is
// outside this module; this only validates what was supplied.
func KeyFromBase64(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}

	switch len(key) {
	case 16, 24, 32:
		return key, nil
	default:
		return nil, fmt.Errorf("key must be 16, 24 or 32 bytes, got %d", len(key))
	}
}

// DeriveKey derives a 256-bit AES key from a deployment passphrase and
// salt using Argon2id. It exists for installations that configure a
// passphrase instead of raw key material; both sides of the wire must use
// the same passphrase and salt to agree on the key.
func DeriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		argonTime,
		argonMemory,
		argonThreads,
		argonKeyLen,
	)
}
