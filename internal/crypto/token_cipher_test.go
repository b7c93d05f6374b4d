package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, 16)
	c := NewTokenCipher("correct horse battery staple", salt)

	token := "https://graph.microsoft.com/v1.0/me/calendarView/delta?$deltatoken=opaque-blob"

	sealed, err := c.Seal(token)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if sealed == token {
		t.Fatalf("sealed blob equals plaintext")
	}

	opened, err := c.Open(sealed)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if opened != token {
		t.Fatalf("Open = %q, want %q", opened, token)
	}
}

func TestSeal_NonDeterministicNonce(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, 16)
	c := NewTokenCipher("pw", salt)

	b1, err := c.Seal("same token")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := c.Seal("same token")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if b1 == b2 {
		t.Fatalf("expected distinct blobs for repeated Seal, got equal")
	}
}

func TestOpen_WrongPassphrase(t *testing.T) {
	salt := bytes.Repeat([]byte{0x02}, 16)
	sealed, err := NewTokenCipher("right", salt).Seal("token")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	_, err = NewTokenCipher("wrong", salt).Open(sealed)
	if err == nil {
		t.Fatalf("expected decryption failure with wrong passphrase")
	}
	if !strings.Contains(err.Error(), "decryption failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpen_BadInput(t *testing.T) {
	salt := bytes.Repeat([]byte{0x03}, 16)
	c := NewTokenCipher("pw", salt)

	if _, err := c.Open("%%% not base64 %%%"); err == nil {
		t.Fatalf("expected base64 decode error")
	}

	// valid base64 but shorter than a GCM nonce
	if _, err := c.Open("AAECAw=="); err == nil {
		t.Fatalf("expected ciphertext-too-short error")
	}
}
