package generate

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	CharsetAlphaNumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	CharsetNumbers      = "0123456789"
)

// CryptoRandom generates a cryptographically-safe random string of length n
// from charset.
func CryptoRandom(n int, charset string) (string, error) {
	if n <= 0 {
		return "", nil
	}

	bytes := make([]byte, n)
	for i := range bytes {
		// linter is mistaken about which package this is
		// nolint: gosec
		bigint, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("couldn't generate random string of len %d: %w", n, err)
		}

		bytes[i] = charset[bigint.Int64()]
	}

	return string(bytes), nil
}

// HexToken generates n random bytes and returns them hex-encoded, so the
// result is 2n characters long. Used for password reset tokens.
func HexToken(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("couldn't generate %d random bytes: %w", n, err)
	}

	return hex.EncodeToString(bytes), nil
}
