package bcryptpbkdf

import (
	"crypto/sha512"
	"hash"
)

// prf adapts bhash to the [hash.Hash] contract so the generic PBKDF2 loop in
// pbkdf2.go can drive it. The key, the SHA-512 digest of the password, is
// fixed for the lifetime of the instance. Written bytes are folded into a
// running SHA-512 state rather than buffered, so salts of any length cost
// constant memory. Sum finalises the salt digest and appends
// bhash(key, digest); Reset discards only the accumulated salt material,
// returning the instance to its post-construction state.
type prf struct {
	key  [sha512.Size]byte
	salt hash.Hash
}

// newPRF returns a prf keyed by the 64-byte SHA-512 password digest.
// Any other key length is a bug in the caller, not a runtime condition.
func newPRF(key []byte) *prf {
	if len(key) != sha512.Size {
		panic("bcryptpbkdf: prf key must be a 64-byte SHA-512 digest")
	}
	p := &prf{salt: sha512.New()}
	copy(p.key[:], key)
	return p
}

func (p *prf) Write(data []byte) (int, error) { return p.salt.Write(data) }

func (p *prf) Sum(in []byte) []byte {
	var digest [sha512.Size]byte
	p.salt.Sum(digest[:0])
	out := bhash(&p.key, &digest)
	return append(in, out[:]...)
}

func (p *prf) Reset() { p.salt.Reset() }

func (p *prf) Size() int { return Size }

func (p *prf) BlockSize() int { return sha512.BlockSize }
