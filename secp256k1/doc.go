// Package secp256k1 provides a secp256k1 implementation of the
// [group.Group] interface.
//
// This package wraps the secp256k1 implementation from gnark-crypto.
// Point arithmetic uses gnark-crypto's Jacobian coordinates (G1Jac),
// including its GLV scalar multiplication; scalars are fr.Element values.
//
// # Encoding
//
// Points use the 33-byte SEC1 compressed form: a 0x02 or 0x03 prefix
// carrying the parity of y, followed by the big-endian x-coordinate.
// The identity encodes as 33 zero bytes. Scalars are 32 bytes big-endian.
//
// # Curve Parameters
//
//	y^2 = x^3 + 7
//
// over the field of size 2^256 - 2^32 - 977, with prime group order
//
//	115792089237316195423570985008687907852837564279074904382605163141518161494337
package secp256k1
