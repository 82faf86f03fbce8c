// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// The negacyclic NTT over GF(3329) decomposes R_q into 128 degree-one
// factors mod (X^2 - zeta^(2*BitRev7(i)+1)), with zeta = 17 a primitive
// 256th root of unity.

const (
	// invNTTScale = 128^-1 mod q, applied after the last inverse layer
	// (each of the 7 levels contributes a factor of 2).
	invNTTScale = 3303
)

// zetas[i] = 17^BitRev7(i) mod q.  Index 0 is unused by the forward
// transform but keeps the FIPS 203 indexing.
var zetas = [128]fieldElement{
	1, 1729, 2580, 3289, 2642, 630, 1897, 848,
	1062, 1919, 193, 797, 2786, 3260, 569, 1746,
	296, 2447, 1339, 1476, 3046, 56, 2240, 1333,
	1426, 2094, 535, 2882, 2393, 2879, 1974, 821,
	289, 331, 3253, 1756, 1197, 2304, 2277, 2055,
	650, 1977, 2513, 632, 2865, 33, 1320, 1915,
	2319, 1435, 807, 452, 1438, 2868, 1534, 2402,
	2647, 2617, 1481, 648, 2474, 3110, 1227, 910,
	17, 2761, 583, 2649, 1637, 723, 2288, 1100,
	1409, 2662, 3281, 233, 756, 2156, 3015, 3050,
	1703, 1651, 2789, 1789, 1847, 952, 1461, 2687,
	939, 2308, 2437, 2388, 733, 2337, 268, 641,
	1584, 2298, 2037, 3220, 375, 2549, 2090, 1645,
	1063, 319, 2773, 757, 2099, 561, 2466, 2594,
	2804, 1092, 403, 1026, 1143, 2150, 2775, 886,
	1722, 1212, 1874, 1029, 2110, 2935, 885, 2154,
}

// gammas[i] = 17^(2*BitRev7(i)+1) mod q; the quadratic moduli used by the
// NTT-domain basecase multiplication.
var gammas = [128]fieldElement{
	17, 3312, 2761, 568, 583, 2746, 2649, 680,
	1637, 1692, 723, 2606, 2288, 1041, 1100, 2229,
	1409, 1920, 2662, 667, 3281, 48, 233, 3096,
	756, 2573, 2156, 1173, 3015, 314, 3050, 279,
	1703, 1626, 1651, 1678, 2789, 540, 1789, 1540,
	1847, 1482, 952, 2377, 1461, 1868, 2687, 642,
	939, 2390, 2308, 1021, 2437, 892, 2388, 941,
	733, 2596, 2337, 992, 268, 3061, 641, 2688,
	1584, 1745, 2298, 1031, 2037, 1292, 3220, 109,
	375, 2954, 2549, 780, 2090, 1239, 1645, 1684,
	1063, 2266, 319, 3010, 2773, 556, 757, 2572,
	2099, 1230, 561, 2768, 2466, 863, 2594, 735,
	2804, 525, 1092, 2237, 403, 2926, 1026, 2303,
	1143, 2186, 2150, 1179, 2775, 554, 886, 2443,
	1722, 1607, 1212, 2117, 1874, 1455, 1029, 2300,
	2110, 1219, 2935, 394, 885, 2444, 2154, 1175,
}

// Computes negacyclic number-theoretic transform (NTT) of a polynomial
// (vector of 256 coefficients) in place; inputs assumed to be in normal
// order, output in bitreversed order.  Cooley-Tukey butterflies, 7 layers.
func nttRef(p *[mlkemN]fieldElement) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < mlkemN; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fieldMul(zeta, p[j+length])
				p[j+length] = fieldSub(p[j], t)
				p[j] = fieldAdd(p[j], t)
			}
		}
	}
}

// Computes inverse of negacyclic number-theoretic transform (NTT) of a
// polynomial (vector of 256 coefficients) in place; inputs assumed to be in
// bitreversed order, output in normal order.  Gentleman-Sande butterflies,
// 7 layers, with the final scale by 128^-1.
func invnttRef(p *[mlkemN]fieldElement) {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < mlkemN; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = fieldAdd(t, p[j+length])
				p[j+length] = fieldMul(zeta, fieldSub(p[j+length], t))
			}
		}
	}

	for i := range p {
		p[i] = fieldMul(p[i], invNTTScale)
	}
}

// baseCaseMul multiplies the degree-one polynomials a0 + a1*X and
// b0 + b1*X modulo X^2 - gamma.
func baseCaseMul(a0, a1, b0, b1, gamma fieldElement) (c0, c1 fieldElement) {
	c0 = fieldAdd(fieldMul(a0, b0), fieldMul(fieldMul(a1, b1), gamma))
	c1 = fieldAdd(fieldMul(a0, b1), fieldMul(a1, b0))
	return
}

// Computes the product of two polynomials in the NTT domain as 128
// independent degree-one products.
func mulNTTRef(p, a, b *[mlkemN]fieldElement) {
	for i := 0; i < 128; i++ {
		p[2*i], p[2*i+1] = baseCaseMul(a[2*i], a[2*i+1], b[2*i], b[2*i+1], gammas[i])
	}
}
