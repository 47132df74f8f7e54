package bcryptpbkdf

import "errors"

// Sentinel errors returned by [Key].
//
// Use [errors.Is] for comparisons:
//
//	_, err := bcryptpbkdf.Key(password, salt, 0, 32)
//	if errors.Is(err, bcryptpbkdf.ErrInvalidRounds) {
//	    // rounds parameter was rejected
//	}
var (
	// ErrInvalidRounds is returned when the rounds parameter is zero.
	// The construction has no meaningful output at zero iterations, so the
	// degenerate case is rejected rather than passed through.
	ErrInvalidRounds = errors.New("bcryptpbkdf: rounds must be at least 1")

	// ErrInvalidKeyLength is returned when the requested key length is zero
	// or exceeds [MaxKeyLen].
	ErrInvalidKeyLength = errors.New("bcryptpbkdf: invalid key length")

	// ErrInvalidSalt is returned when the salt exceeds [MaxSaltLen].
	ErrInvalidSalt = errors.New("bcryptpbkdf: invalid salt")
)
