// encode_test.go - Serialization tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsToBytes(t *testing.T) {
	require := require.New(t)

	bits := []byte{1, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	require.Equal([]byte{0x55, 0x80}, bitsToBytes(bits), "bitsToBytes")
	require.Equal(bits, bytesToBits([]byte{0x55, 0x80}), "bytesToBits")
}

func TestBitsToBytesRoundTrip(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 16; i++ {
		b := make([]byte, 1+rng.Intn(128))
		rng.Read(b)
		require.Equal(b, bitsToBytes(bytesToBits(b)), "bitsToBytes(bytesToBits(b))")
	}
}

func TestByteEncode(t *testing.T) {
	require := require.New(t)

	// 5-bit packing of [0b11110, 0b10100, 0b11000, 0b10010, 0b11101, 0...].
	var f [mlkemN]fieldElement
	copy(f[:], []fieldElement{0x1e, 0x14, 0x18, 0x12, 0x1d})
	b := make([]byte, 32*5)
	byteEncode(5, &f, b)
	require.Equal([]byte{0x9e, 0x62, 0xd9, 0x01, 0x00}, b[:5], "byteEncode(5, ...)")

	// 4-bit unpacking.
	var g [mlkemN]fieldElement
	raw := make([]byte, 32*4)
	copy(raw, []byte{0x12, 0x34, 0x56, 0x78})
	byteDecode(4, raw, &g)
	require.Equal([]fieldElement{2, 1, 4, 3, 6, 5, 8, 7}, g[:8], "byteDecode(4, ...)")
}

func TestByteEncodeRoundTrip(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(42))
	for d := uint(1); d <= 12; d++ {
		max := uint32(1) << d
		if d == 12 {
			max = mlkemQ
		}

		var f, g [mlkemN]fieldElement
		for i := range f {
			f[i] = fieldElement(rng.Intn(int(max)))
		}

		b := make([]byte, 32*d)
		byteEncode(d, &f, b)
		byteDecode(d, b, &g)
		require.Equal(f, g, "byteDecode(byteEncode(f)): d = %d", d)
	}
}

func TestByteDecodeChecked(t *testing.T) {
	require := require.New(t)

	var f, g [mlkemN]fieldElement
	for i := range f {
		f[i] = fieldElement(i) * 13 % mlkemQ
	}

	b := make([]byte, polySize)
	byteEncode(12, &f, b)
	require.NoError(byteDecodeChecked(b, &g), "byteDecodeChecked: valid")
	require.Equal(f, g, "byteDecodeChecked: decoded")

	// Encode a coefficient >= q and ensure it is rejected.  byteEncode
	// packs the raw 12 low bits, so the invalid value survives the trip.
	f[0] = mlkemQ
	byteEncode(12, &f, b)
	require.ErrorIs(byteDecodeChecked(b, &g), ErrInvalidPublicKey, "byteDecodeChecked: out of range")
}
