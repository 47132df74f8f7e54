package kdf

import (
	"fmt"

	"github.com/hasbyte1/go-kdf-utils/bcryptpbkdf"
)

const (
	// DefaultBcryptPBKDFRounds is the recommended rounds cost, matching the
	// ssh-keygen default (-a 16). Each round is 128 Blowfish key-schedule
	// expansions plus 256 block encryptions per 32-byte output block.
	DefaultBcryptPBKDFRounds uint32 = 16

	// DefaultBcryptPBKDFSaltLen is the recommended salt length in bytes,
	// matching the salt size OpenSSH writes into key files.
	DefaultBcryptPBKDFSaltLen = 16
)

// BcryptPBKDFOptions configures a [BcryptPBKDFDeriver].
type BcryptPBKDFOptions struct {
	// Rounds is the iteration cost. Minimum: 1.
	// Default: [DefaultBcryptPBKDFRounds] (16).
	Rounds uint32
}

// DefaultBcryptPBKDFOptions returns BcryptPBKDFOptions with the recommended
// defaults.
func DefaultBcryptPBKDFOptions() BcryptPBKDFOptions {
	return BcryptPBKDFOptions{Rounds: DefaultBcryptPBKDFRounds}
}

// BcryptPBKDFDeriver derives keys with OpenBSD's bcrypt_pbkdf, the KDF used
// by OpenSSH for passphrase-protected private key files. Use it when the
// derived key must interoperate with OpenSSH or OpenBSD tooling; prefer
// [Argon2idDeriver] for new, self-contained systems.
//
// # Thread safety
//
// BcryptPBKDFDeriver is immutable after construction and safe for
// concurrent use.
type BcryptPBKDFDeriver struct {
	rounds uint32
}

// NewBcryptPBKDFDeriver constructs a BcryptPBKDFDeriver with the provided
// options. Returns [ErrInvalidOption] if Rounds is zero.
func NewBcryptPBKDFDeriver(opts BcryptPBKDFOptions) (*BcryptPBKDFDeriver, error) {
	if opts.Rounds < 1 {
		return nil, fmt.Errorf("%w: bcrypt_pbkdf rounds must be >= 1, got %d",
			ErrInvalidOption, opts.Rounds)
	}
	return &BcryptPBKDFDeriver{rounds: opts.Rounds}, nil
}

// Algorithm returns [AlgorithmBcryptPBKDF].
func (d *BcryptPBKDFDeriver) Algorithm() AlgorithmName { return AlgorithmBcryptPBKDF }

// Rounds returns the configured iteration cost.
func (d *BcryptPBKDFDeriver) Rounds() uint32 { return d.rounds }

// RecommendedSaltLength returns [DefaultBcryptPBKDFSaltLen].
func (d *BcryptPBKDFDeriver) RecommendedSaltLength() int { return DefaultBcryptPBKDFSaltLen }

// DeriveKey derives keyLen bytes from password and salt.
// keyLen must be in [1, bcryptpbkdf.MaxKeyLen].
func (d *BcryptPBKDFDeriver) DeriveKey(password, salt []byte, keyLen int) ([]byte, error) {
	if keyLen < 1 || keyLen > bcryptpbkdf.MaxKeyLen {
		return nil, fmt.Errorf("%w: bcrypt_pbkdf key length must be in [1, %d], got %d",
			ErrInvalidKeyLength, bcryptpbkdf.MaxKeyLen, keyLen)
	}
	key, err := bcryptpbkdf.Key(password, salt, d.rounds, keyLen)
	if err != nil {
		return nil, fmt.Errorf("kdf: bcrypt_pbkdf: %w", err)
	}
	return key, nil
}
