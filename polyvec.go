// polyvec.go - Vector of ML-KEM polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

type polyVec struct {
	vec []*poly
}

// Compress and serialize vector of polynomials to d bits per coefficient.
func (v *polyVec) compressTo(r []byte, d uint) {
	chunk := 32 * int(d)
	for i, p := range v.vec {
		p.compressTo(r[i*chunk:], d)
	}
}

// De-serialize and decompress vector of polynomials; approximate inverse of
// polyVec.compressTo().
func (v *polyVec) decompressFrom(a []byte, d uint) {
	chunk := 32 * int(d)
	for i, p := range v.vec {
		p.decompressFrom(a[i*chunk:], d)
	}
}

// Serialize vector of polynomials.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*polySize:])
	}
}

// De-serialize vector of polynomials; inverse of polyVec.toBytes().
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*polySize:])
	}
}

// Apply forward NTT to all elements of a vector of polynomials.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// Apply inverse NTT to all elements of a vector of polynomials.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// Add vectors of polynomials.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// Zeroize a vector of polynomials holding secret data.
func (v *polyVec) wipe() {
	for _, p := range v.vec {
		p.wipe()
	}
}

// Inner product of two vectors of polynomials in the NTT domain,
// accumulated into p.
func (p *poly) pointwiseAcc(a, b *polyVec) {
	var t poly

	p.mulNTT(a.vec[0], b.vec[0])
	for i := 1; i < len(a.vec); i++ { // len(a.vec) == k
		t.mulNTT(a.vec[i], b.vec[i])
		p.add(p, &t)
	}
}
