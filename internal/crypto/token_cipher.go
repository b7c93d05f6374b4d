// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Kondratev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// tokenCipher is the private implementation of [TokenCipher]. The sealing
// key is derived once from the passphrase and salt at construction time.
type tokenCipher struct {
	key []byte

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewTokenCipher constructs a [TokenCipher] whose 256-bit AES key is derived
// from passphrase and salt with Argon2id, using the parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewTokenCipher(passphrase string, salt []byte) TokenCipher {
	c := &tokenCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
	c.key = argon2.IDKey(
		[]byte(passphrase),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
	return c
}

// GenerateSalt reads 16 random bytes from the OS CSPRNG and returns them as
// a key-derivation salt. The salt is not a secret and may be persisted next
// to the sealed blob. Returns an error if the random read fails.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Seal implements [TokenCipher]. It encrypts plaintext with AES-256-GCM.
// A random 12-byte nonce is prepended to the ciphertext so that Open can
// locate it: blob = nonce ‖ ciphertext, base64 (standard encoding).
// Returns an error if cipher creation or the random nonce read fails.
func (c *tokenCipher) Seal(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
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

	// Prepend the nonce so Open can split it out without side-channel.
	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [TokenCipher]. It base64-decodes the blob produced by
// [tokenCipher.Seal], splits out the nonce, and decrypts the ciphertext with
// AES-256-GCM. The blob must be at least as long as the GCM nonce (12 bytes).
// Returns the plaintext, or an error if the blob is too short, the
// passphrase is wrong, or the ciphertext is corrupted (authentication-tag
// mismatch).
func (c *tokenCipher) Open(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	// Decrypt and verify auth tag. An error here almost always means the
	// store was sealed under a different passphrase.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return string(plaintext), nil
}
