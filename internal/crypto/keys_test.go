package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestKeyFromBase64_ValidSizes(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		encoded := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, size))

		key, err := KeyFromBase64(encoded)
		if err != nil {
			t.Fatalf("KeyFromBase64 size %d error: %v", size, err)
		}
		if len(key) != size {
			t.Fatalf("key length = %d, want %d", len(key), size)
		}
	}
}

func TestKeyFromBase64_RejectsBadSize(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("way too short"))

	if _, err := KeyFromBase64(encoded); err == nil {
		t.Fatalf("expected error for 13-byte key")
	}
}

func TestKeyFromBase64_RejectsBadEncoding(t *testing.T) {
	if _, err := KeyFromBase64("!!not base64!!"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
}

func TestDeriveKey_DeterministicAndSaltSensitive(t *testing.T) {
	salt1 := bytes.Repeat([]byte{0xAB}, 16)
	salt2 := bytes.Repeat([]byte{0xCD}, 16)

	k1 := DeriveKey("passphrase", salt1)
	k2 := DeriveKey("passphrase", salt1)
	k3 := DeriveKey("passphrase", salt2)

	if len(k1) != 32 {
		t.Fatalf("derived key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("same passphrase+salt must derive the same key")
	}
	if bytes.Equal(k1, k3) {
		t.Fatalf("different salts must derive different keys")
	}
}
