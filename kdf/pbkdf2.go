package kdf

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultPBKDF2Iterations is the default iteration count, following the
	// OWASP recommendation for PBKDF2-HMAC-SHA256.
	DefaultPBKDF2Iterations = 600_000

	// DefaultPBKDF2SaltLen is the recommended salt length in bytes.
	DefaultPBKDF2SaltLen = 16
)

// PBKDF2Options configures a [PBKDF2Deriver].
type PBKDF2Options struct {
	// Iterations is the PBKDF2 iteration count. Minimum: 1.
	// Default: [DefaultPBKDF2Iterations] (600,000).
	Iterations int

	// Variant selects the underlying hash: [AlgorithmPBKDF2SHA256] or
	// [AlgorithmPBKDF2SHA512]. Default: [AlgorithmPBKDF2SHA256].
	Variant AlgorithmName
}

// DefaultPBKDF2Options returns PBKDF2Options with the recommended defaults.
func DefaultPBKDF2Options() PBKDF2Options {
	return PBKDF2Options{
		Iterations: DefaultPBKDF2Iterations,
		Variant:    AlgorithmPBKDF2SHA256,
	}
}

// PBKDF2Deriver derives keys with PBKDF2 (RFC 8018) over HMAC-SHA-256 or
// HMAC-SHA-512. PBKDF2 has the widest ecosystem support of the drivers in
// this package but no memory hardness; prefer [Argon2idDeriver] or
// [ScryptDeriver] where GPU resistance matters.
//
// # Thread safety
//
// PBKDF2Deriver is immutable after construction and safe for concurrent use.
type PBKDF2Deriver struct {
	iterations int
	variant    AlgorithmName
	newHash    func() hash.Hash
}

// NewPBKDF2Deriver constructs a PBKDF2Deriver with the provided options.
// Returns [ErrInvalidOption] if Iterations is below 1 or Variant is not a
// PBKDF2 algorithm name.
func NewPBKDF2Deriver(opts PBKDF2Options) (*PBKDF2Deriver, error) {
	if opts.Iterations < 1 {
		return nil, fmt.Errorf("%w: pbkdf2 iterations must be >= 1, got %d",
			ErrInvalidOption, opts.Iterations)
	}
	var newHash func() hash.Hash
	switch opts.Variant {
	case AlgorithmPBKDF2SHA256:
		newHash = sha256.New
	case AlgorithmPBKDF2SHA512:
		newHash = sha512.New
	default:
		return nil, fmt.Errorf("%w: unknown pbkdf2 variant %q", ErrInvalidOption, opts.Variant)
	}
	return &PBKDF2Deriver{
		iterations: opts.Iterations,
		variant:    opts.Variant,
		newHash:    newHash,
	}, nil
}

// Algorithm returns the configured variant, [AlgorithmPBKDF2SHA256] or
// [AlgorithmPBKDF2SHA512].
func (d *PBKDF2Deriver) Algorithm() AlgorithmName { return d.variant }

// Iterations returns the configured iteration count.
func (d *PBKDF2Deriver) Iterations() int { return d.iterations }

// RecommendedSaltLength returns [DefaultPBKDF2SaltLen].
func (d *PBKDF2Deriver) RecommendedSaltLength() int { return DefaultPBKDF2SaltLen }

// DeriveKey derives keyLen bytes from password and salt.
func (d *PBKDF2Deriver) DeriveKey(password, salt []byte, keyLen int) ([]byte, error) {
	if keyLen < 1 {
		return nil, fmt.Errorf("%w: pbkdf2 key length must be >= 1, got %d",
			ErrInvalidKeyLength, keyLen)
	}
	return pbkdf2.Key(password, salt, d.iterations, keyLen, d.newHash), nil
}
