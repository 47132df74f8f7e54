package bcryptpbkdf

import (
	"crypto/sha512"
	"fmt"
)

const (
	// MaxKeyLen is the largest derivable key length in bytes, matching the
	// limit enforced by the OpenBSD implementation.
	MaxKeyLen = 1024

	// MaxSaltLen is the largest accepted salt length in bytes, matching the
	// limit enforced by the OpenBSD implementation.
	MaxSaltLen = 1 << 20
)

// Key derives a key of keyLen bytes from password and salt at the given
// rounds cost and returns it.
//
// Derivation is deterministic: identical inputs always produce identical
// output. Password and salt are treated as raw bytes; embedded NUL bytes
// are significant, and both may be empty. rounds must be at least 1; the
// ssh-keygen default is 16. keyLen must be in [1, MaxKeyLen] and need not
// be a multiple of 32.
//
// Arguments are validated before any derivation work starts, so on error
// no key material has been computed. Errors wrap [ErrInvalidRounds],
// [ErrInvalidKeyLength], or [ErrInvalidSalt].
//
// Key is safe for concurrent use; it shares no state between calls.
func Key(password, salt []byte, rounds uint32, keyLen int) ([]byte, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidRounds, rounds)
	}
	if keyLen < 1 {
		return nil, fmt.Errorf("%w: key length must be at least 1, got %d", ErrInvalidKeyLength, keyLen)
	}
	if keyLen > MaxKeyLen {
		return nil, fmt.Errorf("%w: key length %d exceeds maximum %d", ErrInvalidKeyLength, keyLen, MaxKeyLen)
	}
	if len(salt) > MaxSaltLen {
		return nil, fmt.Errorf("%w: salt length %d exceeds maximum %d", ErrInvalidSalt, len(salt), MaxSaltLen)
	}

	hpass := sha512.Sum512(password)

	// PBKDF2 over whole 32-byte blocks; stride is the block count.
	stride := (keyLen + Size - 1) / Size
	intermediate := pbkdf2Key(newPRF(hpass[:]), salt, rounds, stride*Size)

	// Assemble the key by interleaving the PBKDF2 blocks byte-by-byte
	// instead of concatenating them. Output byte i comes from byte i/stride
	// of block i%stride. OpenBSD does this so that a truncated key still
	// draws on every block; it is required for compatibility.
	key := make([]byte, keyLen)
	for i := range key {
		key[i] = intermediate[(i%stride)*Size+i/stride]
	}
	return key, nil
}
