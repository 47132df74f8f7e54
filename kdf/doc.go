// Package kdf provides a uniform interface over password-based key
// derivation functions, with pluggable drivers and a named-driver registry.
//
// # Architecture
//
// The central abstraction is the [Deriver] interface. Four drivers ship with
// this package:
//
//   - [BcryptPBKDFDeriver] — OpenBSD's bcrypt_pbkdf (OpenSSH key files)
//   - [PBKDF2Deriver] — PBKDF2 with SHA-256 or SHA-512
//   - [ScryptDeriver] — scrypt (memory-hard)
//   - [Argon2idDeriver] — Argon2id (memory-hard; recommended for new systems)
//
// All four implement [Deriver], so callers can depend on the interface
// rather than a concrete type — the strategy pattern.
//
// The [Manager] is a driver registry and dispatcher. Register named
// [Deriver] implementations, designate one as the default, then delegate
// derivation through the [Manager]. This is the pattern used when keys from
// several algorithms coexist, e.g. while migrating stored material from
// PBKDF2 to Argon2id.
//
// # Quick start
//
//	m, err := kdf.NewDefaultManager() // Argon2id default, all drivers registered
//	if err != nil { log.Fatal(err) }
//
//	salt, _ := kdf.GenerateSalt(16)
//	key, _  := m.DeriveKey([]byte("my-secret-password"), salt, 32)
//
// # What this package is not
//
// Derivers produce raw key bytes. There is no encoded hash-string format,
// no salt storage, and no parameter negotiation: each driver derives exactly
// the key length the caller requests with the parameters it was constructed
// with. Callers own salt persistence and parameter versioning.
package kdf
