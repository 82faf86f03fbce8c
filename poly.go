// poly.go - ML-KEM polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// Elements of R_q = Z_q[X]/(X^n + 1). Represents polynomial coeffs[0] +
// X*coeffs[1] + X^2*coeffs[2] + ... + X^{n-1}*coeffs[n-1].
//
// Whether a given value holds a ring element or its NTT image is implicit
// from the call site; the K-PKE routines are careful to never mix the two
// domains.
type poly struct {
	coeffs [mlkemN]fieldElement
}

// Compression and subsequent serialization of a polynomial to d bits per
// coefficient.
func (p *poly) compressTo(r []byte, d uint) {
	var t [mlkemN]fieldElement
	for i, c := range p.coeffs {
		t[i] = compress(d, c)
	}
	byteEncode(d, &t, r)
}

// De-serialization and subsequent decompression of a polynomial; approximate
// inverse of poly.compressTo().
func (p *poly) decompressFrom(a []byte, d uint) {
	byteDecode(d, a, &p.coeffs)
	for i, c := range p.coeffs {
		p.coeffs[i] = decompress(d, c)
	}
}

// Serialization of a polynomial (12 bits per coefficient).
func (p *poly) toBytes(r []byte) {
	byteEncode(12, &p.coeffs, r)
}

// De-serialization of a polynomial; inverse of poly.toBytes().
func (p *poly) fromBytes(a []byte) {
	byteDecode(12, a, &p.coeffs)
}

// Convert 32-byte message to polynomial: each message bit becomes 0 or
// ceil(q/2), i.e. decompress at d = 1.
func (p *poly) fromMsg(msg []byte) {
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			mask := -fieldElement((v >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & ((mlkemQ + 1) / 2)
		}
	}
}

// Convert polynomial to 32-byte message; compress at d = 1.
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			msg[i] |= byte(compress(1, p.coeffs[8*i+j]) << uint(j))
		}
	}
}

// Sample a polynomial deterministically from a seed and a nonce, with output
// polynomial close to centered binomial distribution with parameter eta.
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	buf := make([]byte, 64*eta)
	prf(buf, seed[:SymSize], nonce)
	p.cbd(buf, eta)
	memwipe(buf)
}

// Computes negacyclic number-theoretic transform (NTT) of a polynomial in
// place; inputs assumed to be in normal order, output in bitreversed order.
func (p *poly) ntt() {
	hardwareAccelImpl.nttFn(&p.coeffs)
}

// Computes inverse of negacyclic number-theoretic transform (NTT) of a
// polynomial in place; inputs assumed to be in bitreversed order, output in
// normal order.
func (p *poly) invntt() {
	hardwareAccelImpl.invnttFn(&p.coeffs)
}

// Multiply two polynomials in the NTT domain.
func (p *poly) mulNTT(a, b *poly) {
	hardwareAccelImpl.mulNTTFn(&p.coeffs, &a.coeffs, &b.coeffs)
}

// Add two polynomials.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = fieldAdd(a.coeffs[i], b.coeffs[i])
	}
}

// Subtract two polynomials.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = fieldSub(a.coeffs[i], b.coeffs[i])
	}
}

// Zeroize the coefficients of a polynomial holding secret data.
func (p *poly) wipe() {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}
