// Package pallas provides a Pallas curve implementation of the
// [group.Group] interface, wrapping the Pallas curve from
// github.com/coinbase/kryptology.
//
// Pallas is y^2 = x^3 + 5 over the Pasta base field p, with prime order
// q. Together with [github.com/f3rmion/curvebench/vesta] it forms a
// cycle: each curve's scalar field is the other's base field.
//
// Points use the Zcash Pasta encoding: 32 bytes holding the little-endian
// affine x-coordinate, with the least significant bit of y stored in the
// most significant bit. The identity is 32 zero bytes.
//
// The generator is (-1, 2), as in the Zcash pasta_curves crate and the
// vesta package, rather than kryptology's default Pallas base point.
package pallas
