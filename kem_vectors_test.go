// kem_vectors_test.go - ML-KEM KEM test vector tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/sha3"
)

const nrTestVectors = 25 // WARNING: Must match the vector generator.

var compactTestVectors = make(map[string][]byte)

// seededVector pins the outputs for one fixed (d, z, m) triple, as digests
// of the large artifacts and the raw shared secret.
type seededVector struct {
	ekDigest string
	dkDigest string
	ctDigest string
	ss       string
}

var seededVectors = map[string]*seededVector{
	"ML-KEM-512": {
		ekDigest: "3ae268dccc5456ac0d0f9b39257dc48fe081383b97c400512d712b739762daee",
		dkDigest: "17fb29b8c4baf74fb81eea15ffd583b3e37f5a5b8dcf6db96c72c3b3751d6f17",
		ctDigest: "81efe667826848514dcae46fc10cfd34f7b95ed6900e094f727c9e7cccc34df2",
		ss:       "14cace3e48771b316676afad2cfcfe8488daaa4fad954e57236caa3f24a42cf7",
	},
	"ML-KEM-768": {
		ekDigest: "0b7934c83125c788995e2ba6bd761e33046b3e40571be53e023309a29f398cc9",
		dkDigest: "dac268bde6a8dd238e9887117d6b664e7a7a9350ad6b7c08a948e504809572a5",
		ctDigest: "dbf4e9aa48b078ad46ec1c9c47bda8c2d2fec9d0e7a21bd48d2238a2abedb856",
		ss:       "9cddd089ffe70e3996e76f7c8d06746df34d07e8657bc0fcf2bb0e1c3084aea1",
	},
	"ML-KEM-1024": {
		ekDigest: "c7b8fa0aa471d5ae18922d6ccad5b31e1d84f92ae723abfd13747018740a8530",
		dkDigest: "3a2a676c5a242ee683cb6097c8f3e64fbef4d90267f9250ec2beab8f99621fad",
		ctDigest: "7c89743960f7c3d17bb69572e49de14fe0990c9113a0706963a8f4c7b39afcdf",
		ss:       "0ad8d1ea1b8dd788979b4379581218df9321bdce5567eca42ae6be7d395f1a54",
	},
}

// testRng is a deterministic random source backed by SHAKE-128, so the
// compact vectors are reproducible across implementations.
type testRng struct {
	xof sha3.ShakeHash
}

func (r *testRng) Read(b []byte) (int, error) {
	return r.xof.Read(b)
}

func newTestRng(domain string) *testRng {
	xof := sha3.NewShake128()
	xof.Write([]byte(domain))
	return &testRng{xof: xof}
}

// counterReader yields the bytes ctr, ctr+1, ... for building fixed seeds.
type counterReader struct {
	ctr byte
}

func (r *counterReader) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = r.ctr
		r.ctr++
	}
	return len(b), nil
}

func TestKEMVectors(t *testing.T) {
	if err := loadCompactTestVectors(); err != nil {
		t.Fatalf("loadCompactTestVectors(): %v", err)
	}

	forceDisableHardwareAcceleration()
	doTestKEMVectors(t)

	if !canAccelerate {
		t.Log("Hardware acceleration not supported on this host.")
		return
	}
	mustInitHardwareAcceleration()
	doTestKEMVectors(t)
}

func doTestKEMVectors(t *testing.T) {
	impl := "_" + hardwareAccelImpl.name
	for _, p := range allParams {
		t.Run(p.Name()+"_Seeded"+impl, func(t *testing.T) { doTestKEMVectorsSeeded(t, p) })
		t.Run(p.Name()+"_Compact"+impl, func(t *testing.T) { doTestKEMVectorsCompact(t, p) })
	}
}

// doTestKEMVectorsSeeded checks the fixed-seed known answers: d and z are
// the bytes 0..63, m is the bytes 64..95.
func doTestKEMVectorsSeeded(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	vec := seededVectors[p.Name()]
	require.NotNil(vec, "no seeded vector")

	rng := &counterReader{}
	pk, sk, err := p.GenerateKeyPair(rng)
	require.NoError(err, "GenerateKeyPair()")
	require.Equal(vec.ekDigest, hexDigest(pk.Bytes()), "ek digest")
	require.Equal(vec.dkDigest, hexDigest(sk.Bytes()), "dk digest")

	ct, ss, err := pk.Encapsulate(rng)
	require.NoError(err, "Encapsulate()")
	require.Equal(vec.ctDigest, hexDigest(ct), "ct digest")
	require.Equal(vec.ss, hex.EncodeToString(ss), "shared secret")

	ss2, err := sk.Decapsulate(ct)
	require.NoError(err, "Decapsulate()")
	require.Equal(ss, ss2, "decapsulated shared secret")
}

// doTestKEMVectorsCompact runs the chained digest comparison over a larger
// deterministic corpus, in a space saving representation.
func doTestKEMVectorsCompact(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	h := sha256.New()

	rng := newTestRng("mlkem compact test vectors: " + p.Name())
	for idx := 0; idx < nrTestVectors; idx++ {
		pk, sk, err := p.GenerateKeyPair(rng)
		require.NoError(err, "GenerateKeyPair(): %v", idx)

		ct, ss, err := pk.Encapsulate(rng)
		require.NoError(err, "Encapsulate(): %v", idx)

		ss2, err := sk.Decapsulate(ct)
		require.NoError(err, "Decapsulate(): %v", idx)
		require.Equal(ss, ss2, "shared secret: %v", idx)

		for _, blob := range [][]byte{pk.Bytes(), sk.Bytes(), ct, ss, ss2} {
			h.Write([]byte(hex.EncodeToString(blob) + "\n"))
		}
	}

	require.Equal(compactTestVectors[p.Name()], h.Sum(nil), "Digest mismatch")
}

func hexDigest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func loadCompactTestVectors() error {
	f, err := os.Open(filepath.Join("testdata", "compactVectors.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	rawMap := make(map[string]string)
	dec := json.NewDecoder(f)
	if err = dec.Decode(&rawMap); err != nil {
		return err
	}

	for k, v := range rawMap {
		digest, err := hex.DecodeString(v)
		if err != nil {
			return err
		}

		compactTestVectors[k] = digest
	}

	return nil
}

var _ io.Reader = (*testRng)(nil)
