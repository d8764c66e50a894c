// Package ristretto provides a ristretto255 implementation of the
// [group.Group] interface, wrapping github.com/gtank/ristretto255.
//
// ristretto255 is a prime-order group built on edwards25519. Its encoding
// is canonical and only represents group elements, so decoding needs no
// subgroup check. Doubling is an addition of a point to itself.
package ristretto
