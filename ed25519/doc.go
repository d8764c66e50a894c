// Package ed25519 provides an edwards25519 implementation of the
// [group.Group] interface.
//
// It wraps filippo.io/edwards25519. That library has no dedicated point
// doubling routine, so [Point.Double] is an addition of a point to itself.
//
// # Decoding
//
// edwards25519 has cofactor 8. [Point.SetBytes] accepts only points in
// the prime-order subgroup: after decoding, the point is multiplied by
// the subgroup order and rejected unless the result is the identity. This
// makes decoding markedly slower than on the prime-order curves.
package ed25519
