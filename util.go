// util.go - Utilities.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// memwipe zeroizes a buffer that held secret data.
func memwipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
