package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_cipher_mock.go -package=mock

// SecretCipher wraps authenticated encryption and decryption of short
// secrets (stored tenant passwords). It knows nothing about the network,
// the session store, or key provisioning — the key is always supplied by
// the caller.
//
// Blob layout: base64(nonce ‖ ciphertext), 12-byte nonce, AES-256-GCM.
type SecretCipher interface {
	// Seal encrypts plaintext under key with a fresh random nonce and
	// returns the base64 blob. Fails with a generic cryptographic error
	// if the key length is not a valid AES key size.
	Seal(plaintext, key []byte) (string, error)

	// Open decodes and decrypts a blob produced by Seal. A tampered blob
	// or a wrong key surfaces as an error wrapping [ErrIntegrity]; a blob
	// too short to contain a nonce wraps [ErrMalformed]. Callers rely on
	// this distinction to tell "corrupted or wrongly-keyed stored secret"
	// apart from "wrong password".
	Open(blob string, key []byte) ([]byte, error)
}
