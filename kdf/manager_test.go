package kdf_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/hasbyte1/go-kdf-utils/kdf"
)

func newTestManager(t testing.TB) *kdf.Manager {
	t.Helper()
	m := kdf.NewManager(kdf.AlgorithmBcryptPBKDF)
	for _, d := range fastDerivers(t) {
		if err := m.RegisterDriver(d.Algorithm(), d); err != nil {
			t.Fatalf("RegisterDriver(%s): %v", d.Algorithm(), err)
		}
	}
	return m
}

func TestNewDefaultManager(t *testing.T) {
	m, err := kdf.NewDefaultManager()
	if err != nil {
		t.Fatalf("NewDefaultManager: %v", err)
	}
	if m.DefaultDriver() != kdf.AlgorithmArgon2id {
		t.Errorf("DefaultDriver = %q, want %q", m.DefaultDriver(), kdf.AlgorithmArgon2id)
	}
	for _, name := range []kdf.AlgorithmName{
		kdf.AlgorithmBcryptPBKDF,
		kdf.AlgorithmPBKDF2SHA256,
		kdf.AlgorithmScrypt,
		kdf.AlgorithmArgon2id,
	} {
		if !m.HasDriver(name) {
			t.Errorf("driver %q not registered", name)
		}
	}
}

func TestManager_RegisterDriver_Invalid(t *testing.T) {
	m := kdf.NewManager(kdf.AlgorithmArgon2id)
	if err := m.RegisterDriver("", fastDerivers(t)[0]); !errors.Is(err, kdf.ErrEmptyDriverName) {
		t.Errorf("empty name: expected ErrEmptyDriverName, got %v", err)
	}
	if err := m.RegisterDriver("custom", nil); !errors.Is(err, kdf.ErrNilDeriver) {
		t.Errorf("nil deriver: expected ErrNilDeriver, got %v", err)
	}
}

func TestManager_Driver_NotFound(t *testing.T) {
	m := kdf.NewManager(kdf.AlgorithmArgon2id)
	if _, err := m.Driver(kdf.AlgorithmScrypt); !errors.Is(err, kdf.ErrDriverNotFound) {
		t.Errorf("expected ErrDriverNotFound, got %v", err)
	}
}

func TestManager_DeriveKey_UsesDefault(t *testing.T) {
	m := newTestManager(t)

	viaManager, err := m.DeriveKey([]byte("pw"), []byte("salt"), 32)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}

	d, err := m.Driver(kdf.AlgorithmBcryptPBKDF)
	if err != nil {
		t.Fatalf("Driver: %v", err)
	}
	direct, err := d.DeriveKey([]byte("pw"), []byte("salt"), 32)
	if err != nil {
		t.Fatalf("direct DeriveKey: %v", err)
	}

	if !bytes.Equal(viaManager, direct) {
		t.Error("manager derivation differs from the default driver's output")
	}
}

func TestManager_DeriveKey_UnregisteredDefault(t *testing.T) {
	m := kdf.NewManager("missing")
	if _, err := m.DeriveKey([]byte("pw"), []byte("salt"), 32); !errors.Is(err, kdf.ErrDriverNotFound) {
		t.Errorf("expected ErrDriverNotFound, got %v", err)
	}
}

func TestManager_SetDefaultDriver(t *testing.T) {
	m := newTestManager(t)
	if err := m.SetDefaultDriver(kdf.AlgorithmScrypt); err != nil {
		t.Fatalf("SetDefaultDriver: %v", err)
	}
	if m.DefaultDriver() != kdf.AlgorithmScrypt {
		t.Errorf("DefaultDriver = %q, want %q", m.DefaultDriver(), kdf.AlgorithmScrypt)
	}
	if err := m.SetDefaultDriver("missing"); !errors.Is(err, kdf.ErrDriverNotFound) {
		t.Errorf("expected ErrDriverNotFound, got %v", err)
	}
}

func TestManager_ConcurrentUse(t *testing.T) {
	m := newTestManager(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if _, err := m.DeriveKey([]byte("pw"), []byte("salt"), 16); err != nil {
					t.Errorf("DeriveKey: %v", err)
					return
				}
				_ = m.HasDriver(kdf.AlgorithmScrypt)
				_ = m.DefaultDriver()
			}
		}()
	}
	wg.Wait()
}

func TestGenerateSalt(t *testing.T) {
	a, err := kdf.GenerateSalt(16)
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	if len(a) != 16 {
		t.Fatalf("got %d bytes, want 16", len(a))
	}
	b, err := kdf.GenerateSalt(16)
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two generated salts are identical")
	}
}

func TestGenerateSalt_Invalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := kdf.GenerateSalt(n); !errors.Is(err, kdf.ErrInvalidOption) {
			t.Errorf("n=%d: expected ErrInvalidOption, got %v", n, err)
		}
	}
}
