// sample.go - Uniform rejection sampling into the NTT domain.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

const (
	shake128Rate = 168 // xof.BlockSize() is not a constant.

	// Squeeze 3 blocks up front; 504 bytes hold 336 12-bit candidates,
	// which suffices for 256 accepted coefficients in all but roughly 1%
	// of cases.  The rate is divisible by 3, so candidates never
	// straddle a refill.
	xofInitialBlocks = 3
)

// sampleNTT fills p with a uniform element of the NTT domain by rejection
// sampling 12-bit candidates from the XOF stream.  The stream is consumed
// incrementally; it is never re-seeded or re-finalized mid-polynomial.
func sampleNTT(p *poly, xof sha3.ShakeHash) {
	var buf [shake128Rate * xofInitialBlocks]byte
	xof.Read(buf[:])

	for ctr, pos, maxPos := 0, 0, len(buf); ctr < mlkemN; {
		d1 := uint16(buf[pos]) | (uint16(buf[pos+1]&0x0f) << 8)
		d2 := uint16(buf[pos+1]>>4) | (uint16(buf[pos+2]) << 4)

		if d1 < mlkemQ {
			p.coeffs[ctr] = fieldElement(d1)
			ctr++
		}
		if d2 < mlkemQ && ctr < mlkemN {
			p.coeffs[ctr] = fieldElement(d2)
			ctr++
		}

		if pos += 3; pos == maxPos {
			// On the unlikely chance 3 blocks are insufficient,
			// incrementally squeeze out 1 block at a time.
			xof.Read(buf[:shake128Rate])
			pos, maxPos = 0, shake128Rate
		}
	}
}

// Deterministically generate matrix A (or the transpose of A) from a seed.
// Entries of the matrix are polynomials that look uniformly random.  The
// XOF for entry A[i][j] is keyed by seed || j || i, with j the column and i
// the row, per the final FIPS 203 text.
func genMatrix(a []polyVec, seed []byte, transposed bool) {
	for i, v := range a {
		for j, p := range v.vec {
			var xof sha3.ShakeHash
			if transposed {
				xof = newXOF(seed, byte(i), byte(j))
			} else {
				xof = newXOF(seed, byte(j), byte(i))
			}

			sampleNTT(p, xof)
		}
	}
}
