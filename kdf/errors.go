package kdf

import "errors"

// Sentinel errors returned by derivation operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := deriver.DeriveKey(password, salt, keyLen)
//	if errors.Is(err, kdf.ErrInvalidKeyLength) {
//	    // requested length was rejected
//	}
var (
	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value outside the allowed range (e.g., a non-power-of-two
	// scrypt N or zero PBKDF2 iterations).
	ErrInvalidOption = errors.New("kdf: invalid option value")

	// ErrInvalidKeyLength is returned by DeriveKey when the requested key
	// length is out of range for the driver.
	ErrInvalidKeyLength = errors.New("kdf: invalid key length")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.DeriveKey] when the requested driver has not been registered.
	ErrDriverNotFound = errors.New("kdf: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("kdf: driver name must not be empty")

	// ErrNilDeriver is returned by [Manager.RegisterDriver] when a nil
	// [Deriver] is supplied.
	ErrNilDeriver = errors.New("kdf: deriver must not be nil")
)
