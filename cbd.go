// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// Load bytes into a 32-bit integer in little-endian order.
func loadLittleEndian(x []byte, bytes int) uint32 {
	var r uint32
	for i, v := range x[:bytes] {
		r |= uint32(v) << (8 * uint(i))
	}
	return r
}

// Given an array of 64*eta uniformly random bytes, compute polynomial with
// coefficients distributed according to a centered binomial distribution
// with parameter eta.
func (p *poly) cbd(buf []byte, eta int) {
	hardwareAccelImpl.cbdFn(p, buf, eta)
}

func cbdRef(p *poly, buf []byte, eta int) {
	switch eta {
	case 2:
		// 4 bytes yield 8 coefficients; sideways-add adjacent bit pairs.
		for i := 0; i < mlkemN/8; i++ {
			t := loadLittleEndian(buf[4*i:], 4)
			d := (t & 0x55555555) + ((t >> 1) & 0x55555555)

			for j := uint(0); j < 8; j++ {
				a := (d >> (4 * j)) & 0x3
				b := (d >> (4*j + 2)) & 0x3
				p.coeffs[8*i+int(j)] = fieldReduceOnce(a + mlkemQ - b)
			}
		}
	case 3:
		// 3 bytes yield 4 coefficients; sideways-add adjacent bit triples.
		for i := 0; i < mlkemN/4; i++ {
			t := loadLittleEndian(buf[3*i:], 3)
			var d uint32
			for j := 0; j < 3; j++ {
				d += (t >> uint(j)) & 0x249249
			}

			for j := uint(0); j < 4; j++ {
				a := (d >> (6 * j)) & 0x7
				b := (d >> (6*j + 3)) & 0x7
				p.coeffs[4*i+int(j)] = fieldReduceOnce(a + mlkemQ - b)
			}
		}
	default:
		panic("mlkem: eta must be in {2,3}")
	}
}
