package ed25519

import (
	"errors"
	"io"

	"filippo.io/edwards25519"

	"github.com/f3rmion/curvebench/group"
)

var (
	// ErrInvalidScalar is returned when scalar bytes are not a canonical
	// encoding of an integer below the group order.
	ErrInvalidScalar = errors.New("ed25519: invalid scalar encoding")
	// ErrInvalidPoint is returned when bytes do not encode a curve point.
	ErrInvalidPoint = errors.New("ed25519: invalid point encoding")
	// ErrTorsion is returned when a point decodes but has a component
	// outside the prime-order subgroup.
	ErrTorsion = errors.New("ed25519: point is not in the prime-order subgroup")
)

var (
	identity = edwards25519.NewIdentityPoint()
	minusOne = edwards25519.NewScalar().Negate(scalarFromUint64(1))
)

func scalarFromUint64(v uint64) *edwards25519.Scalar {
	var buf [32]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	// Any 64-bit value is below the group order, so this cannot fail.
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return s
}

// Scalar represents an element of the Ed25519 scalar field.
// It implements [group.Scalar] by wrapping edwards25519.Scalar.
type Scalar struct {
	inner edwards25519.Scalar
}

// Add sets s to a + b and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Subtract(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Multiply(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Negate(&a.(*Scalar).inner)
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.Set(scalarFromUint64(v))
	return s
}

// Bytes returns the 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetBytes sets s from a 32-byte little-endian canonical encoding.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if _, err := s.inner.SetCanonicalBytes(data); err != nil {
		return nil, ErrInvalidScalar
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner) == 1
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

// Point represents a point on the edwards25519 curve.
// It implements [group.Point] by wrapping edwards25519.Point.
type Point struct {
	inner edwards25519.Point
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner.Add(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	p.inner.Subtract(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Negate(&a.(*Point).inner)
	return p
}

// Double sets p to a + a and returns p. edwards25519 has no dedicated
// doubling entry point, so this goes through the addition formula.
func (p *Point) Double(a group.Point) group.Point {
	q := &a.(*Point).inner
	p.inner.Add(q, q)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMult(&s.(*Scalar).inner, &q.(*Point).inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the 32-byte compressed encoding of p.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// SetBytes sets p from a 32-byte compressed encoding and returns p.
// Points with a small-order component are rejected, which costs an
// additional scalar multiplication per call.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	var q edwards25519.Point
	if _, err := q.SetBytes(data); err != nil {
		return nil, ErrInvalidPoint
	}
	if !isTorsionFree(&q) {
		return nil, ErrTorsion
	}
	p.inner.Set(&q)
	return p, nil
}

// isTorsionFree reports whether [l]q is the identity, where l is the
// prime subgroup order. It is computed as [l-1]q + q.
func isTorsionFree(q *edwards25519.Point) bool {
	var t edwards25519.Point
	t.ScalarMult(minusOne, q)
	t.Add(&t, q)
	return t.Equal(identity) == 1
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(identity) == 1
}

// Ed25519 implements [group.Group] for the prime-order subgroup of the
// edwards25519 curve.
type Ed25519 struct{}

// Name returns "Ed25519".
func (g *Ed25519) Name() string {
	return "Ed25519"
}

// NewScalar returns a new scalar initialized to zero.
func (g *Ed25519) NewScalar() group.Scalar {
	s := &Scalar{}
	s.inner.Set(edwards25519.NewScalar())
	return s
}

// NewPoint returns a new point initialized to the identity element.
func (g *Ed25519) NewPoint() group.Point {
	p := &Point{}
	p.inner.Set(identity)
	return p
}

// Generator returns the canonical Ed25519 base point.
func (g *Ed25519) Generator() group.Point {
	p := &Point{}
	p.inner.Set(edwards25519.NewGeneratorPoint())
	return p
}

// RandomScalar reads 64 bytes from r and reduces them to a uniformly
// distributed scalar.
func (g *Ed25519) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := &Scalar{}
	if _, err := s.inner.SetUniformBytes(buf[:]); err != nil {
		return nil, err
	}
	return s, nil
}
