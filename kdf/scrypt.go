package kdf

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	// DefaultScryptN is the default CPU/memory cost (must be a power of two).
	// N=32768, r=8 uses 32 MiB of memory and takes roughly 100 ms on modern
	// hardware, the x/crypto/scrypt recommendation for interactive logins.
	DefaultScryptN = 32768

	// DefaultScryptR is the default block size parameter.
	DefaultScryptR = 8

	// DefaultScryptP is the default parallelisation parameter.
	DefaultScryptP = 1

	// DefaultScryptSaltLen is the recommended salt length in bytes.
	DefaultScryptSaltLen = 16
)

// ScryptOptions configures a [ScryptDeriver].
type ScryptOptions struct {
	// N is the CPU/memory cost. Must be a power of two greater than 1.
	// Default: [DefaultScryptN] (32768).
	N int

	// R is the block size parameter. Minimum: 1.
	// Default: [DefaultScryptR] (8).
	R int

	// P is the parallelisation parameter. Minimum: 1.
	// Default: [DefaultScryptP] (1).
	P int
}

// DefaultScryptOptions returns ScryptOptions with the recommended defaults.
func DefaultScryptOptions() ScryptOptions {
	return ScryptOptions{N: DefaultScryptN, R: DefaultScryptR, P: DefaultScryptP}
}

// ScryptDeriver derives keys with scrypt. Memory cost is fixed at N*r*128
// bytes, which makes large-scale GPU attacks expensive.
//
// # Thread safety
//
// ScryptDeriver is immutable after construction and safe for concurrent use.
type ScryptDeriver struct {
	opts ScryptOptions
}

// NewScryptDeriver constructs a ScryptDeriver with the provided options.
// Returns [ErrInvalidOption] if N is not a power of two greater than 1, or
// if R or P is below 1.
func NewScryptDeriver(opts ScryptOptions) (*ScryptDeriver, error) {
	if opts.N <= 1 || opts.N&(opts.N-1) != 0 {
		return nil, fmt.Errorf("%w: scrypt N must be a power of two > 1, got %d",
			ErrInvalidOption, opts.N)
	}
	if opts.R < 1 {
		return nil, fmt.Errorf("%w: scrypt r must be >= 1, got %d", ErrInvalidOption, opts.R)
	}
	if opts.P < 1 {
		return nil, fmt.Errorf("%w: scrypt p must be >= 1, got %d", ErrInvalidOption, opts.P)
	}
	return &ScryptDeriver{opts: opts}, nil
}

// Algorithm returns [AlgorithmScrypt].
func (d *ScryptDeriver) Algorithm() AlgorithmName { return AlgorithmScrypt }

// Options returns the current scrypt parameter set.
func (d *ScryptDeriver) Options() ScryptOptions { return d.opts }

// RecommendedSaltLength returns [DefaultScryptSaltLen].
func (d *ScryptDeriver) RecommendedSaltLength() int { return DefaultScryptSaltLen }

// DeriveKey derives keyLen bytes from password and salt.
func (d *ScryptDeriver) DeriveKey(password, salt []byte, keyLen int) ([]byte, error) {
	if keyLen < 1 {
		return nil, fmt.Errorf("%w: scrypt key length must be >= 1, got %d",
			ErrInvalidKeyLength, keyLen)
	}
	key, err := scrypt.Key(password, salt, d.opts.N, d.opts.R, d.opts.P, keyLen)
	if err != nil {
		return nil, fmt.Errorf("kdf: scrypt: %w", err)
	}
	return key, nil
}
