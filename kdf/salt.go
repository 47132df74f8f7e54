package kdf

import (
	"crypto/rand"
	"fmt"
	"io"
)

// GenerateSalt returns n cryptographically random bytes suitable for use as
// a derivation salt. Size the salt with the driver's
// [Deriver.RecommendedSaltLength].
//
// Example:
//
//	d, _ := kdf.NewArgon2idDeriver(kdf.DefaultArgon2Options())
//	salt, err := kdf.GenerateSalt(d.RecommendedSaltLength())
func GenerateSalt(n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: salt length must be >= 1, got %d", ErrInvalidOption, n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("kdf: failed to generate salt: %w", err)
	}
	return b, nil
}
