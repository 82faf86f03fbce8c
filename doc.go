// doc.go - ML-KEM godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements the ML-KEM IND-CCA2-secure key encapsulation
// mechanism (KEM) as specified in FIPS 203, based on the hardness of solving
// the learning-with-errors (LWE) problem over module lattices.
//
// ML-KEM is the NIST-standardized descendant of the CRYSTALS-Kyber
// submission to the NIST Post-Quantum Cryptography project, and this
// implementation supersedes the pre-standardization Kyber one.
//
// Additionally implementations of the AKE and UAKE constructs as presented
// in the Kyber paper, rebuilt on top of ML-KEM, are included for users that
// seek an authenticated key exchange.
//
// For more information, see
// https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.203.pdf.
package mlkem
