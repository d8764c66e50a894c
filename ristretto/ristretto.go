package ristretto

import (
	"errors"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/f3rmion/curvebench/group"
)

// EncodingLen is the size in bytes of encoded points and scalars.
const EncodingLen = 32

var (
	// ErrInvalidScalar is returned when scalar bytes are not a canonical
	// encoding of an integer below the group order.
	ErrInvalidScalar = errors.New("ristretto: invalid scalar encoding")
	// ErrInvalidPoint is returned when bytes are not a canonical
	// ristretto255 element encoding.
	ErrInvalidPoint = errors.New("ristretto: invalid point encoding")
)

var (
	zeroScalar = ristretto255.NewScalar()
	identity   = ristretto255.NewElement().Zero()
)

// Scalar represents an element of the ristretto255 scalar field.
// It implements [group.Scalar] by wrapping ristretto255.Scalar.
type Scalar struct {
	inner ristretto255.Scalar
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
	s.inner = a.(*Scalar).inner
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	var buf [32]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	// A 64-bit value is always canonical.
	if err := s.inner.Decode(buf[:]); err != nil {
		panic(err)
	}
	return s
}

// Bytes returns the 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.inner.Encode(make([]byte, 0, EncodingLen))
}

// SetBytes sets s from a 32-byte little-endian canonical encoding.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	// Decode panics on input of the wrong length.
	if len(data) != EncodingLen {
		return nil, ErrInvalidScalar
	}
	if err := s.inner.Decode(data); err != nil {
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
	return s.inner.Equal(zeroScalar) == 1
}

// Point represents an element of the ristretto255 group.
// It implements [group.Point] by wrapping ristretto255.Element.
type Point struct {
	inner ristretto255.Element
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

// Double sets p to a + a and returns p.
func (p *Point) Double(a group.Point) group.Point {
	q := &a.(*Point).inner
	p.inner.Add(q, q)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	var r ristretto255.Element
	r.ScalarMult(&s.(*Scalar).inner, &q.(*Point).inner)
	p.inner = r
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner = a.(*Point).inner
	return p
}

// Bytes returns the 32-byte canonical encoding of p.
func (p *Point) Bytes() []byte {
	return p.inner.Encode(make([]byte, 0, EncodingLen))
}

// SetBytes sets p from a 32-byte canonical encoding and returns p.
// Every valid ristretto255 encoding is an element of the prime-order
// group, so no separate subgroup check is needed.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != EncodingLen {
		return nil, ErrInvalidPoint
	}
	var e ristretto255.Element
	if err := e.Decode(data); err != nil {
		return nil, ErrInvalidPoint
	}
	p.inner = e
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(identity) == 1
}

// Ristretto implements [group.Group] for ristretto255.
type Ristretto struct{}

// Name returns "Ristretto".
func (g *Ristretto) Name() string {
	return "Ristretto"
}

// NewScalar returns a new scalar initialized to zero.
func (g *Ristretto) NewScalar() group.Scalar {
	return &Scalar{inner: *zeroScalar}
}

// NewPoint returns a new point initialized to the identity element.
func (g *Ristretto) NewPoint() group.Point {
	p := &Point{}
	p.inner.Zero()
	return p
}

// Generator returns the canonical ristretto255 generator.
func (g *Ristretto) Generator() group.Point {
	p := &Point{}
	p.inner.Base()
	return p
}

// RandomScalar reads 64 bytes from r and reduces them to a uniformly
// distributed scalar.
func (g *Ristretto) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := &Scalar{}
	s.inner.FromUniformBytes(buf[:])
	return s, nil
}
