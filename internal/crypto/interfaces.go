package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_cipher_mock.go -package=mock

// TokenCipher seals and opens the opaque continuation token for the
// encrypted sync-state backend. The token stays a black-box string on both
// sides of the cipher.
type TokenCipher interface {
	// Seal encrypts plaintext and returns a base64 blob safe to persist in
	// an untrusted settings store.
	Seal(plaintext string) (string, error)

	// Open decrypts a blob produced by Seal. Returns an error if the blob
	// is corrupted or was sealed under a different passphrase.
	Open(blob string) (string, error)
}
