// indcpa.go - K-PKE IND-CPA encryption.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "io"

// Serialize the public key as concatenation of the serialized vector of
// polynomials t and the public seed used to generate the matrix A.
func packPublicKey(r []byte, t *polyVec, seed []byte) {
	t.toBytes(r)
	copy(r[len(t.vec)*polySize:], seed[:SymSize])
}

// De-serialize public key from a byte array; inverse of packPublicKey.
func unpackPublicKey(t *polyVec, seed, packedPk []byte) {
	t.fromBytes(packedPk)

	off := len(t.vec) * polySize
	copy(seed, packedPk[off:off+SymSize])
}

// Serialize the ciphertext as concatenation of the compressed and serialized
// vector of polynomials u and the compressed and serialized polynomial v.
func packCiphertext(r []byte, u *polyVec, v *poly, du, dv uint) {
	u.compressTo(r, du)
	v.compressTo(r[len(u.vec)*32*int(du):], dv)
}

// De-serialize and decompress ciphertext from a byte array; approximate
// inverse of packCiphertext.
func unpackCiphertext(u *polyVec, v *poly, c []byte, du, dv uint) {
	u.decompressFrom(c, du)
	v.decompressFrom(c[len(u.vec)*32*int(du):], dv)
}

// Serialize the secret key.
func packSecretKey(r []byte, sk *polyVec) {
	sk.toBytes(r)
}

// De-serialize the secret key; inverse of packSecretKey.
func unpackSecretKey(sk *polyVec, packedSk []byte) {
	sk.fromBytes(packedSk)
}

type indcpaPublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) toBytes() []byte {
	return pk.packed
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}

	// Modulus check: every serialized coefficient of t must already be in
	// [0, q).
	var t poly
	for i := 0; i < p.k; i++ {
		if err := byteDecodeChecked(b[i*polySize:], &t.coeffs); err != nil {
			return err
		}
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = hashH(b)

	return nil
}

type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// Generates public and private key for the CPA-secure public-key encryption
// scheme underlying ML-KEM.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	var d [SymSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}
	defer memwipe(d[:])

	sk := &indcpaSecretKey{
		packed: make([]byte, p.indcpaSecretKeySize),
	}
	pk := &indcpaPublicKey{
		packed: make([]byte, p.indcpaPublicKeySize),
	}

	// (rho, sigma) = G(d || k), with the parameter set's k folded in as a
	// domain separator.
	publicSeed, noiseSeed := hashG(d[:], []byte{byte(p.k)})
	defer memwipe(noiseSeed[:])

	a := p.allocMatrix()
	genMatrix(a, publicSeed[:], false)

	var nonce byte
	skpv := p.allocPolyVec()
	defer skpv.wipe()
	for _, pv := range skpv.vec {
		pv.getNoise(noiseSeed[:], nonce, p.eta1)
		nonce++
	}

	e := p.allocPolyVec()
	defer e.wipe()
	for _, pv := range e.vec {
		pv.getNoise(noiseSeed[:], nonce, p.eta1)
		nonce++
	}

	skpv.ntt()
	e.ntt()

	// t = A*s + e, all in the NTT domain.
	pkpv := p.allocPolyVec()
	for i, pv := range pkpv.vec {
		pv.pointwiseAcc(&a[i], &skpv)
	}
	pkpv.add(&pkpv, &e)

	packSecretKey(sk.packed, &skpv)
	packPublicKey(pk.packed, &pkpv, publicSeed[:])
	pk.h = hashH(pk.packed)

	return pk, sk, nil
}

// Encryption function of the CPA-secure public-key encryption scheme
// underlying ML-KEM.
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var k, v, epp poly
	var seed [SymSize]byte

	tpv := p.allocPolyVec()
	unpackPublicKey(&tpv, seed[:], pk.packed)

	k.fromMsg(m)
	defer k.wipe()

	at := p.allocMatrix()
	genMatrix(at, seed[:], true)

	var nonce byte
	sp := p.allocPolyVec()
	defer sp.wipe()
	for _, pv := range sp.vec {
		pv.getNoise(coins, nonce, p.eta1)
		nonce++
	}

	sp.ntt()

	ep := p.allocPolyVec()
	defer ep.wipe()
	for _, pv := range ep.vec {
		pv.getNoise(coins, nonce, p.eta2)
		nonce++
	}

	epp.getNoise(coins, nonce, p.eta2) // Don't need to increment nonce.
	defer epp.wipe()

	// u = INTT(A^T * y) + e1
	bp := p.allocPolyVec()
	for i, pv := range bp.vec {
		pv.pointwiseAcc(&at[i], &sp)
	}
	bp.invntt()
	bp.add(&bp, &ep)

	// v = INTT(t * y) + e2 + mu
	v.pointwiseAcc(&tpv, &sp)
	v.invntt()
	v.add(&v, &epp)
	v.add(&v, &k)

	packCiphertext(c, &bp, &v, p.du, p.dv)
}

// Decryption function of the CPA-secure public-key encryption scheme
// underlying ML-KEM.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	var v, mp poly
	defer mp.wipe()

	skpv, bp := p.allocPolyVec(), p.allocPolyVec()
	defer skpv.wipe()
	unpackCiphertext(&bp, &v, c, p.du, p.dv)
	unpackSecretKey(&skpv, sk.packed)

	bp.ntt()

	// w = v - INTT(s * NTT(u))
	mp.pointwiseAcc(&skpv, &bp)
	mp.invntt()
	mp.sub(&v, &mp)

	mp.toMsg(m)
}

func (p *ParameterSet) allocMatrix() []polyVec {
	m := make([]polyVec, 0, p.k)
	for i := 0; i < p.k; i++ {
		m = append(m, p.allocPolyVec())
	}
	return m
}

func (p *ParameterSet) allocPolyVec() polyVec {
	vec := make([]*poly, 0, p.k)
	for i := 0; i < p.k; i++ {
		vec = append(vec, new(poly))
	}

	return polyVec{vec}
}
