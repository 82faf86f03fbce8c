// params.go - ML-KEM parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	mlkemN = 256
	mlkemQ = 3329

	// A full (uncompressed) serialized polynomial packs 256 12-bit
	// coefficients.
	polySize = 384
)

var (
	// MLKEM512 is the ML-KEM-512 parameter set, which aims to provide
	// security equivalent to AES-128 (NIST category 1).
	//
	// This parameter set has a 1632 byte decapsulation key, 800 byte
	// encapsulation key, and a 768 byte cipher text.
	MLKEM512 = newParameterSet("ML-KEM-512", 2)

	// MLKEM768 is the ML-KEM-768 parameter set, which aims to provide
	// security equivalent to AES-192 (NIST category 3).
	//
	// This parameter set has a 2400 byte decapsulation key, 1184 byte
	// encapsulation key, and a 1088 byte cipher text.
	MLKEM768 = newParameterSet("ML-KEM-768", 3)

	// MLKEM1024 is the ML-KEM-1024 parameter set, which aims to provide
	// security equivalent to AES-256 (NIST category 5).
	//
	// This parameter set has a 3168 byte decapsulation key, 1568 byte
	// encapsulation key, and a 1568 byte cipher text.
	MLKEM1024 = newParameterSet("ML-KEM-1024", 4)
)

// ParameterSet is an ML-KEM parameter set.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   uint
	dv   uint

	polyVecSize           int
	polyVecCompressedSize int
	polyCompressedSize    int

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// PublicKeySize returns the size of a public (encapsulation) key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private (decapsulation) key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta2 = 2
	switch k {
	case 2:
		p.eta1 = 3
		p.du, p.dv = 10, 4
	case 3:
		p.eta1 = 2
		p.du, p.dv = 10, 4
	case 4:
		p.eta1 = 2
		p.du, p.dv = 11, 5
	default:
		panic("mlkem: k must be in {2,3,4}")
	}

	p.polyVecSize = k * polySize
	p.polyVecCompressedSize = k * 32 * int(p.du)
	p.polyCompressedSize = 32 * int(p.dv)

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = p.polyVecCompressedSize + p.polyCompressedSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.publicKeySize + 2*SymSize // H(ek) and the implicit rejection secret z
	p.cipherTextSize = p.indcpaSize

	return &p
}
