// Package group defines abstract interfaces for prime-order cryptographic
// groups, used to run the same benchmark battery over different elliptic
// curve libraries.
//
// This package provides three core interfaces:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern. Operations like Add, Double
// and ScalarMult set the receiver to the result and return it, allowing
// tight accumulation loops without per-iteration allocation:
//
//	acc := g.Generator()
//	for i := 0; i < n; i++ {
//		acc.Double(acc)
//	}
//
// Decoding returns errors rather than panicking. Arithmetic and encoding
// are total.
//
// # Implementing a Group
//
// To expose a new curve library:
//
//  1. Create a Scalar type that wraps the library's field element and implements [Scalar]
//  2. Create a Point type that wraps the library's point and implements [Point]
//  3. Create a Group type that implements [Group] as a factory
//  4. Call grouptest.Run from the package tests
//
// Methods may assume that every Scalar and Point argument was created by
// the same Group; mixing curves panics on a type assertion.
//
// # Validation
//
// Implementations must reject, in SetBytes, any encoding that does not
// decode to an element of the prime-order group. For curves with a
// cofactor this includes a subgroup check.
package group
