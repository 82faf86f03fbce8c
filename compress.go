// compress.go - Lossy coefficient compression.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// compress maps x in [0, q) to round(2^d/q * x) mod 2^d, round-half-up,
// for 1 <= d < 12.  Integer-only; the division by the constant q is
// strength-reduced by the compiler to a multiply and shift, so there is no
// data-dependent timing.
func compress(d uint, x fieldElement) fieldElement {
	return fieldElement((((uint32(x) << d) + mlkemQ/2) / mlkemQ) & (1<<d - 1))
}

// decompress maps y in [0, 2^d) to round(q/2^d * y), round-half-up; the
// approximate inverse of compress.  The round trip error is bounded by
// ceil(q / 2^(d+1)).
func decompress(d uint, y fieldElement) fieldElement {
	return fieldElement((uint32(y)*mlkemQ + 1<<(d-1)) >> d)
}
