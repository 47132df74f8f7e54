package bcryptpbkdf

import (
	"encoding/binary"
	"hash"
)

// pbkdf2Key runs the standard PBKDF2 block loop (RFC 8018, section 5.2)
// over an arbitrary PRF and returns dkLen derived bytes.
//
// This is the same loop as golang.org/x/crypto/pbkdf2 with the PRF passed
// in directly instead of being hardwired to HMAC: bhash is a keyed MAC in
// its own right and must not be wrapped in one.
func pbkdf2Key(prf hash.Hash, salt []byte, rounds uint32, dkLen int) []byte {
	hashLen := prf.Size()
	numBlocks := (dkLen + hashLen - 1) / hashLen

	var buf [4]byte
	dk := make([]byte, 0, numBlocks*hashLen)
	u := make([]byte, hashLen)
	for block := 1; block <= numBlocks; block++ {
		// U_1 = PRF(salt || BE32(block))
		prf.Reset()
		prf.Write(salt)
		binary.BigEndian.PutUint32(buf[:], uint32(block))
		prf.Write(buf[:])
		dk = prf.Sum(dk)
		t := dk[len(dk)-hashLen:]
		copy(u, t)

		// U_n = PRF(U_{n-1}); T ^= U_n
		for n := uint32(2); n <= rounds; n++ {
			prf.Reset()
			prf.Write(u)
			u = prf.Sum(u[:0])
			for x := range u {
				t[x] ^= u[x]
			}
		}
	}
	return dk[:dkLen]
}
