package bcryptpbkdf

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"testing"
)

// zeros64 returns a 64-byte all-zero block.
func zeros64() [sha512.Size]byte {
	return [sha512.Size]byte{}
}

// ascending64 returns the 64-byte block 0x00, 0x01, ..., 0x3f.
func ascending64() [sha512.Size]byte {
	var b [sha512.Size]byte
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// Known-answer vectors from OpenBSD's bcrypt_pbkdf test suite, exercising the
// raw primitive below the PBKDF2 layer.
func TestBhash_KnownAnswers(t *testing.T) {
	tests := []struct {
		name  string
		hpass [sha512.Size]byte
		hsalt [sha512.Size]byte
		want  string
	}{
		{
			name:  "zero password, zero salt",
			hpass: zeros64(),
			hsalt: zeros64(),
			want:  "460286e972fa833f8b1283ad8fa919fa29bde20e23329e774d8422bac0a7926c",
		},
		{
			name:  "ascending password, zero salt",
			hpass: ascending64(),
			hsalt: zeros64(),
			want:  "b0b229dbc6badef0e1da2527474a8b28888f8b061476fe80c32256e1142dd00d",
		},
		{
			name:  "zero password, ascending salt",
			hpass: zeros64(),
			hsalt: ascending64(),
			want:  "b62b4e367d3157f5c31e4d2cbafb2931494d9d3bdd171d55cf799fa4416042e2",
		},
		{
			name:  "ascending password, ascending salt",
			hpass: ascending64(),
			hsalt: ascending64(),
			want:  "c6a95fe6413115fb57e99f757498e85da3c6e1df0c3c93aa975c548a344326f8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := hex.DecodeString(tt.want)
			if err != nil {
				t.Fatalf("bad test vector: %v", err)
			}
			got := bhash(&tt.hpass, &tt.hsalt)
			if !bytes.Equal(got[:], want) {
				t.Errorf("bhash = %x, want %x", got, want)
			}
		})
	}
}

func TestBhash_DoesNotMutateSeed(t *testing.T) {
	hpass, hsalt := zeros64(), zeros64()
	_ = bhash(&hpass, &hsalt)
	if !bytes.Equal(bhashSeed, []byte("OxychromaticBlowfishSwatDynamite")) {
		t.Fatal("bhash mutated the shared seed constant")
	}
}

func TestPRF_RejectsWrongKeySize(t *testing.T) {
	for _, n := range []int{0, 32, 63, 65} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("newPRF accepted a %d-byte key", n)
				}
			}()
			newPRF(make([]byte, n))
		}()
	}
}

// The adaptor must behave like a fresh instance after Reset: the PBKDF2
// loop reuses one instance across every block and iteration.
func TestPRF_ResetRestoresInitialState(t *testing.T) {
	key := make([]byte, sha512.Size)
	for i := range key {
		key[i] = byte(i * 3)
	}

	p := newPRF(key)
	p.Write([]byte("first salt material"))
	first := p.Sum(nil)

	p.Reset()
	p.Write([]byte("first salt material"))
	second := p.Sum(nil)

	if !bytes.Equal(first, second) {
		t.Error("Reset did not restore the post-construction state")
	}

	p.Reset()
	p.Write([]byte("different material"))
	third := p.Sum(nil)
	if bytes.Equal(first, third) {
		t.Error("different salt material produced identical PRF output")
	}
}

// Incremental writes must accumulate the same digest as one contiguous write.
func TestPRF_StreamingWritesMatchSingleWrite(t *testing.T) {
	key := make([]byte, sha512.Size)

	whole := newPRF(key)
	whole.Write([]byte("saltsaltsalt"))

	split := newPRF(key)
	split.Write([]byte("salt"))
	split.Write([]byte("salt"))
	split.Write([]byte("salt"))

	if !bytes.Equal(whole.Sum(nil), split.Sum(nil)) {
		t.Error("split writes diverged from a single write")
	}
}

func TestPRF_Sizes(t *testing.T) {
	p := newPRF(make([]byte, sha512.Size))
	if p.Size() != Size {
		t.Errorf("Size() = %d, want %d", p.Size(), Size)
	}
	if p.BlockSize() != sha512.BlockSize {
		t.Errorf("BlockSize() = %d, want %d", p.BlockSize(), sha512.BlockSize)
	}
}
