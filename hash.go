// hash.go - FIPS 202 hash and XOF façade.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// hashH is the function H from FIPS 203: SHA3-256 over the concatenation
// of the inputs.
func hashH(b ...[]byte) [32]byte {
	h := sha3.New256()
	for _, v := range b {
		h.Write(v)
	}

	var out [32]byte
	h.Sum(out[:0])
	return out
}

// hashJ is the function J from FIPS 203: 32 bytes of SHAKE-256 over the
// concatenation of the inputs.
func hashJ(b ...[]byte) [32]byte {
	xof := sha3.NewShake256()
	for _, v := range b {
		xof.Write(v)
	}

	var out [32]byte
	xof.Read(out[:])
	return out
}

// hashG is the function G from FIPS 203: SHA3-512 over the concatenation of
// the inputs, split into two 32 byte halves.
func hashG(b ...[]byte) (x, y [32]byte) {
	h := sha3.New512()
	for _, v := range b {
		h.Write(v)
	}

	var out [64]byte
	h.Sum(out[:0])
	copy(x[:], out[:32])
	copy(y[:], out[32:])
	return
}

// prf is the function PRF from FIPS 203: 64*eta bytes of SHAKE-256 over a
// 32 byte seed and a one byte nonce.
func prf(dst, seed []byte, nonce byte) {
	extSeed := make([]byte, 0, SymSize+1)
	extSeed = append(extSeed, seed...)
	extSeed = append(extSeed, nonce)
	defer memwipe(extSeed)

	sha3.ShakeSum256(dst, extSeed)
}

// newXOF opens the incremental SHAKE-128 reader over seed || a || b that
// backs rejection sampling.  The returned state is squeezed block-wise and
// MUST NOT be re-initialized mid-stream.
func newXOF(seed []byte, a, b byte) sha3.ShakeHash {
	xof := sha3.NewShake128()
	xof.Write(seed[:SymSize])
	xof.Write([]byte{a, b})
	return xof
}
