// Package bcryptpbkdf implements bcrypt_pbkdf(3), the password-based key
// derivation function OpenBSD and OpenSSH use to protect private key files.
//
// # Construction
//
// The function is PBKDF2 with an unusual pseudo-random function and an
// unusual final assembly step:
//
//   - The PRF is a bespoke Blowfish-based hash ("bhash"): the SHA-512 digest
//     of the password and the SHA-512 digest of the accumulated salt material
//     drive 128 alternating key-schedule expansions, and the resulting cipher
//     state scrambles a fixed 32-byte constant into the 32-byte PRF output.
//   - The PBKDF2 output blocks are not concatenated. The final key is
//     assembled by interleaving the blocks byte-by-byte, so every output
//     byte depends on which total key length was requested.
//
// Both quirks are load-bearing: keys derived here must match OpenBSD's
// bcrypt_pbkdf.c bit-for-bit or the encrypted key file is unreadable.
//
// # Quick start
//
//	key, err := bcryptpbkdf.Key([]byte("passphrase"), salt, 16, 48)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// key[:32] is the cipher key, key[32:] the IV, per OpenSSH's usage.
//
// # Cost model
//
// Work scales with rounds × ceil(keyLen/32). Each round runs 128 Blowfish
// key-schedule expansions plus 256 block encryptions, so even rounds=16
// (the ssh-keygen default) is deliberately slow. Derivation is pure CPU
// work with no internal parallelism; callers needing throughput should run
// independent derivations on separate goroutines.
package bcryptpbkdf
