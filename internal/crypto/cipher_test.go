package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	c := NewSecretCipher()
	key := testKey()
	plaintext := []byte("secret1")

	blob, err := c.Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	got, err := c.Open(blob, key)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip = %q, want %q", got, plaintext)
	}
}

func TestSeal_NonceFreshness(t *testing.T) {
	c := NewSecretCipher()
	key := testKey()
	plaintext := []byte("same plaintext")

	b1, err := c.Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := c.Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected distinct blobs for repeated encryption, got equal")
	}
}

func TestSeal_BlobLayout(t *testing.T) {
	c := NewSecretCipher()

	blob, err := c.Seal([]byte("x"), testKey())
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("blob is not valid base64: %v", err)
	}
	// 12-byte nonce + 1 byte plaintext + 16-byte GCM tag
	if len(raw) != 12+1+16 {
		t.Fatalf("blob length = %d, want 29", len(raw))
	}
}

func TestOpen_TamperedBlobFailsIntegrity(t *testing.T) {
	c := NewSecretCipher()
	key := testKey()

	blob, err := c.Seal([]byte("secret1"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(blob)
	raw[len(raw)-1] ^= 0x01 // flip last byte
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = c.Open(tampered, key)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("Open(tampered) error = %v, want ErrIntegrity", err)
	}
}

func TestOpen_WrongKeyFailsIntegrity(t *testing.T) {
	c := NewSecretCipher()

	blob, err := c.Seal([]byte("secret1"), testKey())
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	wrongKey := bytes.Repeat([]byte{0x24}, 32)
	_, err = c.Open(blob, wrongKey)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("Open(wrong key) error = %v, want ErrIntegrity", err)
	}
}

func TestOpen_ShortBlobIsMalformed(t *testing.T) {
	c := NewSecretCipher()

	short := base64.StdEncoding.EncodeToString([]byte("tiny"))
	_, err := c.Open(short, testKey())
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Open(short) error = %v, want ErrMalformed", err)
	}
}

func TestOpen_BadBase64IsMalformed(t *testing.T) {
	c := NewSecretCipher()

	_, err := c.Open("%%% not base64 %%%", testKey())
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Open(bad base64) error = %v, want ErrMalformed", err)
	}
}

func TestSeal_BadKeyLength(t *testing.T) {
	c := NewSecretCipher()

	_, err := c.Seal([]byte("x"), []byte("short key"))
	if err == nil {
		t.Fatalf("expected error for invalid key length")
	}
	if errors.Is(err, ErrIntegrity) || errors.Is(err, ErrMalformed) {
		t.Fatalf("key-length error must stay generic, got %v", err)
	}
}
