package bcryptpbkdf

import (
	"crypto/sha512"
	"encoding/binary"

	"golang.org/x/crypto/blowfish"
)

// Size is the output size of the bhash primitive in bytes. It is also the
// PBKDF2 block size of the overall construction.
const Size = 32

// bhashSeed is the constant block state scrambled by bhash. The value is
// fixed by the OpenBSD implementation and must never change.
var bhashSeed = []byte("OxychromaticBlowfishSwatDynamite")

// bhash compresses a 64-byte password digest and a 64-byte salt digest into
// Size bytes. It is the expensive step of the construction: the salted key
// schedule plus 64 alternating re-expansions with the salt and password
// digests amortise the password into the full Blowfish state, and 64 rounds
// of ECB encryption over bhashSeed then extract Size pseudo-random bytes.
//
// The fixed-size pointer parameters make the 64-byte contract a compile-time
// property; there is no runtime length check to get wrong.
func bhash(hpass, hsalt *[sha512.Size]byte) [Size]byte {
	c, err := blowfish.NewSaltedCipher(hpass[:], hsalt[:])
	if err != nil {
		// NewSaltedCipher only fails on an out-of-range key length, which the
		// parameter types rule out.
		panic("bcryptpbkdf: " + err.Error())
	}
	for i := 0; i < 64; i++ {
		blowfish.ExpandKey(hsalt[:], c)
		blowfish.ExpandKey(hpass[:], c)
	}

	var out [Size]byte
	copy(out[:], bhashSeed)
	for i := 0; i < 64; i++ {
		for j := 0; j < Size; j += blowfish.BlockSize {
			c.Encrypt(out[j:j+blowfish.BlockSize], out[j:j+blowfish.BlockSize])
		}
	}

	// The cipher treats the state as big-endian 32-bit words; the
	// construction serialises each word little-endian.
	for i := 0; i < Size; i += 4 {
		v := binary.BigEndian.Uint32(out[i:])
		binary.LittleEndian.PutUint32(out[i:], v)
	}
	return out
}
