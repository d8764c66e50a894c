package group

import (
	"io"
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order and
// are used as multipliers in scalar multiplication.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. Operands may
// alias the receiver, so accumulations like s.Add(s, t) are valid.
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// SetUint64 sets the receiver to v reduced modulo the group order
	// and returns it.
	SetUint64(v uint64) Scalar
	// Bytes returns the canonical byte representation of the scalar.
	Bytes() []byte
	// SetBytes sets the receiver from its canonical byte representation
	// and returns it. Returns an error if the data is invalid or out of range.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Point represents an element of a cryptographic group, typically a point
// on an elliptic curve.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern
// and accept operands that alias the receiver.
//
// The identity element (point at infinity) is the additive identity:
// P + Identity = P for all points P.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// Double sets the receiver to a+a and returns it.
	Double(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the fixed-width canonical encoding of the point.
	Bytes() []byte
	// SetBytes sets the receiver from an encoding produced by Bytes and
	// returns it. Returns an error if data is not a valid group element.
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group is a factory for the scalars and points of one prime-order group.
// It encapsulates all curve-specific details so that code written against
// it, such as the benchmark runner, is generic over curves.
//
// Example usage:
//
//	g := &ristretto.Ristretto{} // or any other Group implementation
//	two := g.NewScalar().SetUint64(2)
//	point := g.NewPoint().ScalarMult(two, g.Generator())
type Group interface {
	// Name returns a short human-readable name of the group.
	Name() string
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns a new point set to the group's base point.
	Generator() Point
	// RandomScalar returns a uniformly random scalar read from r.
	RandomScalar(r io.Reader) (Scalar, error)
}
