package kdf

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher for key derivation.
//
// Register one or more named [Deriver] implementations, nominate a default
// driver, and then call [Manager.DeriveKey] through the Manager for
// day-to-day derivation. Keeping every algorithm in use registered lets
// material derived under an old algorithm remain reproducible while new
// material moves to the current default.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver)
// while allowing concurrent reads.
type Manager struct {
	mu      sync.RWMutex
	drivers map[AlgorithmName]Deriver
	def     AlgorithmName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered with [Manager.RegisterDriver] before any
// derivation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant that registers
// all built-in drivers with their recommended defaults.
func NewManager(defaultDriver AlgorithmName) *Manager {
	return &Manager{
		drivers: make(map[AlgorithmName]Deriver),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with all built-in drivers
// pre-registered using their recommended default options. The default
// driver is [AlgorithmArgon2id].
func NewDefaultManager() (*Manager, error) {
	bcryptD, err := NewBcryptPBKDFDeriver(DefaultBcryptPBKDFOptions())
	if err != nil {
		return nil, fmt.Errorf("kdf: failed to create default bcrypt_pbkdf deriver: %w", err)
	}
	pbkdf2D, err := NewPBKDF2Deriver(DefaultPBKDF2Options())
	if err != nil {
		return nil, fmt.Errorf("kdf: failed to create default pbkdf2 deriver: %w", err)
	}
	scryptD, err := NewScryptDeriver(DefaultScryptOptions())
	if err != nil {
		return nil, fmt.Errorf("kdf: failed to create default scrypt deriver: %w", err)
	}
	argon2D, err := NewArgon2idDeriver(DefaultArgon2Options())
	if err != nil {
		return nil, fmt.Errorf("kdf: failed to create default argon2id deriver: %w", err)
	}

	m := NewManager(AlgorithmArgon2id)
	_ = m.RegisterDriver(AlgorithmBcryptPBKDF, bcryptD)
	_ = m.RegisterDriver(AlgorithmPBKDF2SHA256, pbkdf2D)
	_ = m.RegisterDriver(AlgorithmScrypt, scryptD)
	_ = m.RegisterDriver(AlgorithmArgon2id, argon2D)
	return m, nil
}

// RegisterDriver adds or replaces a named deriver in the Manager.
// It is safe to call while other goroutines are using the Manager.
func (m *Manager) RegisterDriver(name AlgorithmName, d Deriver) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if d == nil {
		return ErrNilDeriver
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = d
	return nil
}

// Driver returns the [Deriver] registered under name, or [ErrDriverNotFound]
// if no such driver has been registered.
func (m *Manager) Driver(name AlgorithmName) (Deriver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return d, nil
}

// SetDefaultDriver changes the driver used by [Manager.DeriveKey].
// The named driver must already be registered.
func (m *Manager) SetDefaultDriver(name AlgorithmName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() AlgorithmName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name AlgorithmName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// DeriveKey derives keyLen bytes from password and salt using the default
// driver.
//
// To derive with a specific (non-default) driver, use [Manager.Driver]
// first:
//
//	d, err := m.Driver(kdf.AlgorithmBcryptPBKDF)
//	key, err := d.DeriveKey(password, salt, 32)
func (m *Manager) DeriveKey(password, salt []byte, keyLen int) ([]byte, error) {
	d, err := m.resolveDefault()
	if err != nil {
		return nil, err
	}
	return d.DeriveKey(password, salt, keyLen)
}

func (m *Manager) resolveDefault() (Deriver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return d, nil
}
