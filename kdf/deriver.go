package kdf

// AlgorithmName identifies a key-derivation driver.
// Using a named string type prevents accidental confusion with plain strings.
type AlgorithmName string

const (
	// AlgorithmBcryptPBKDF selects OpenBSD's bcrypt_pbkdf driver.
	AlgorithmBcryptPBKDF AlgorithmName = "bcrypt-pbkdf"
	// AlgorithmPBKDF2SHA256 selects PBKDF2 with SHA-256.
	AlgorithmPBKDF2SHA256 AlgorithmName = "pbkdf2-sha256"
	// AlgorithmPBKDF2SHA512 selects PBKDF2 with SHA-512.
	AlgorithmPBKDF2SHA512 AlgorithmName = "pbkdf2-sha512"
	// AlgorithmScrypt selects the scrypt driver.
	AlgorithmScrypt AlgorithmName = "scrypt"
	// AlgorithmArgon2id selects the Argon2id driver (recommended for new systems).
	AlgorithmArgon2id AlgorithmName = "argon2id"
)

// Deriver is the core interface satisfied by all key-derivation drivers.
//
// All implementations must be deterministic — identical inputs always yield
// identical output — and safe for concurrent use by multiple goroutines.
type Deriver interface {
	// DeriveKey stretches password and salt into keyLen bytes of key
	// material using the driver's configured cost parameters. Password and
	// salt are raw bytes; embedded NUL bytes are significant.
	DeriveKey(password, salt []byte, keyLen int) ([]byte, error)

	// Algorithm returns the AlgorithmName implemented by this deriver.
	Algorithm() AlgorithmName

	// RecommendedSaltLength returns the salt length in bytes that should be
	// used for new derivations. It is advisory; drivers do not reject
	// shorter salts.
	RecommendedSaltLength() int
}
