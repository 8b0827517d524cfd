package crypto

import "errors"

var (
	// ErrIntegrity marks an AEAD authentication-tag mismatch: the blob
	// was tampered with or decrypted under the wrong key.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrMalformed marks a blob that cannot even be parsed: bad base64
	// or fewer bytes than one nonce.
	ErrMalformed = errors.New("malformed secret blob")
)
