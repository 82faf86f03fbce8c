// kem.go - ML-KEM key encapsulation mechanism.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"
)

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size.
	ErrInvalidKeySize = errors.New("mlkem: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte serialized
	// ciphertext is an invalid size.
	ErrInvalidCipherTextSize = errors.New("mlkem: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("mlkem: invalid private key")

	// ErrInvalidPublicKey is the error returned when a byte serialized
	// public key fails the FIPS 203 modulus check.
	ErrInvalidPublicKey = errors.New("mlkem: invalid public key")
)

// PrivateKey is an ML-KEM decapsulation key.
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// Wipe zeroizes the secret components of a PrivateKey.  The key MUST NOT
// be used after it is wiped.
func (sk *PrivateKey) Wipe() {
	memwipe(sk.sk.packed)
	memwipe(sk.z)
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.sk = new(indcpaSecretKey)
	sk.z = make([]byte, SymSize)
	sk.PublicKey.pk = new(indcpaPublicKey)
	sk.PublicKey.p = p

	// De-serialize the public key first.
	off := p.indcpaSecretKeySize
	if err := sk.PublicKey.pk.fromBytes(p, b[off:off+p.publicKeySize]); err != nil {
		return nil, err
	}
	off += p.publicKeySize
	if !bytes.Equal(sk.PublicKey.pk.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize
	copy(sk.z, b[off:])

	// Then go back to de-serialize the private key.
	if err := sk.sk.fromBytes(p, b[:p.indcpaSecretKeySize]); err != nil {
		return nil, err
	}

	return sk, nil
}

// PublicKey is an ML-KEM encapsulation key.
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.toBytes()
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey, enforcing
// the FIPS 203 encapsulation key checks (length, modulus).
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	pk := &PublicKey{
		pk: new(indcpaPublicKey),
		p:  p,
	}

	if err := pk.pk.fromBytes(p, b); err != nil {
		return nil, err
	}

	return pk, nil
}

// GenerateKeyPair generates a private and public key parameterized with the
// given ParameterSet, using the random source rng for the seed d and the
// implicit rejection secret z.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(rng); err != nil {
		return nil, nil, err
	}

	// z is fresh entropy, never derived from d.
	kp.PublicKey.p = p
	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// Encapsulate generates a cipher text and shared secret via the ML-KEM
// CCA-secure key encapsulation mechanism.
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText []byte, sharedSecret []byte, err error) {
	var m [SymSize]byte
	if _, err = io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}
	defer memwipe(m[:])

	// (K, r) = G(m || H(ek))
	kShared, coins := hashG(m[:], pk.pk.h[:])
	defer memwipe(coins[:])

	cipherText = make([]byte, pk.p.cipherTextSize)
	pk.p.indcpaEncrypt(cipherText, m[:], pk.pk, coins[:])

	return cipherText, kShared[:], nil
}

// Decapsulate generates a shared secret for the given cipher text via the
// ML-KEM CCA-secure key encapsulation mechanism.
//
// If the cipher text fails re-encryption, sharedSecret is the implicit
// rejection value J(z || cipherText); the two cases are not distinguishable
// by the caller, and the selection is branch-free on secret data.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (sharedSecret []byte, err error) {
	p := sk.PublicKey.p
	if len(cipherText) != p.cipherTextSize {
		return nil, ErrInvalidCipherTextSize
	}

	var m [SymSize]byte
	defer memwipe(m[:])
	p.indcpaDecrypt(m[:], cipherText, sk.sk)

	// (K', r') = G(m' || h)
	kShared, coins := hashG(m[:], sk.PublicKey.pk.h[:])
	defer memwipe(coins[:])

	// Kbar = J(z || c)
	kReject := hashJ(sk.z, cipherText)

	cmp := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cmp, m[:], sk.PublicKey.pk, coins[:])

	// Branch-free selection of K' or Kbar on the comparison of c and c'.
	fail := subtle.ConstantTimeSelect(subtle.ConstantTimeCompare(cipherText, cmp), 0, 1)
	subtle.ConstantTimeCopy(fail, kShared[:], kReject[:])
	memwipe(kReject[:])

	return kShared[:], nil
}
