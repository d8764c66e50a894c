package pallas

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"math/big"

	"github.com/coinbase/kryptology/pkg/core/curves"

	"github.com/f3rmion/curvebench/group"
)

// EncodingLen is the size in bytes of encoded points and scalars.
const EncodingLen = 32

var (
	// ErrInvalidScalar is returned when scalar bytes are not a canonical
	// encoding of an integer below the group order.
	ErrInvalidScalar = errors.New("pallas: invalid scalar encoding")
	// ErrInvalidPoint is returned when bytes do not encode a curve point.
	ErrInvalidPoint = errors.New("pallas: invalid point encoding")
)

var curve = curves.PALLAS()

// generatorEncoding is the compressed encoding of (-1, 2), the base point
// of the Zcash pasta_curves crate. kryptology's own base point differs.
const generatorEncoding = "00000000ed302d991bf94c09fc98462200000000000000000000000000000040"

var generator = mustDecodePoint(generatorEncoding)

func mustDecodePoint(s string) curves.Point {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	p, err := curve.Point.FromAffineCompressed(b)
	if err != nil {
		panic(err)
	}
	return p
}

// Scalar represents an element of the Pallas scalar field.
// It implements [group.Scalar] by wrapping a kryptology curves.Scalar.
// kryptology values are immutable, so every operation replaces inner.
type Scalar struct {
	inner curves.Scalar
}

// Add sets s to a + b and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner = a.(*Scalar).inner.Add(b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner = a.(*Scalar).inner.Sub(b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner = a.(*Scalar).inner.Mul(b.(*Scalar).inner)
	return s
}

// Negate sets s to -a and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner = a.(*Scalar).inner.Neg()
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner = a.(*Scalar).inner.Clone()
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	inner, err := curve.Scalar.SetBigInt(new(big.Int).SetUint64(v))
	if err != nil {
		panic(err)
	}
	s.inner = inner
	return s
}

// Bytes returns the 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetBytes sets s from a 32-byte little-endian canonical encoding.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != EncodingLen {
		return nil, ErrInvalidScalar
	}
	inner, err := curve.Scalar.SetBytes(data)
	if err != nil {
		return nil, ErrInvalidScalar
	}
	// kryptology's range check misses some values at or above the order,
	// so canonicality is checked by re-encoding.
	if !bytes.Equal(inner.Bytes(), data) {
		return nil, ErrInvalidScalar
	}
	s.inner = inner
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Cmp(b.(*Scalar).inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Point represents a point on the Pallas curve.
// It implements [group.Point] by wrapping a kryptology curves.Point.
type Point struct {
	inner curves.Point
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner = a.(*Point).inner.Add(b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	p.inner = a.(*Point).inner.Sub(b.(*Point).inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner = a.(*Point).inner.Neg()
	return p
}

// Double sets p to 2a and returns p.
func (p *Point) Double(a group.Point) group.Point {
	p.inner = a.(*Point).inner.Double()
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner = q.(*Point).inner.Mul(s.(*Scalar).inner)
	return p
}

// Set copies the value of a into p and returns p. kryptology points are
// never mutated in place, so sharing the underlying value is safe.
func (p *Point) Set(a group.Point) group.Point {
	p.inner = a.(*Point).inner
	return p
}

// Bytes returns the 32-byte compressed encoding of p: the little-endian
// x-coordinate with the parity of y in the top bit. The identity encodes
// as all zeros.
func (p *Point) Bytes() []byte {
	if p.inner.IsIdentity() {
		return make([]byte, EncodingLen)
	}
	return p.inner.ToAffineCompressed()
}

// SetBytes sets p from a 32-byte compressed encoding and returns p.
// Pallas has cofactor 1, so any point on the curve is accepted.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != EncodingLen {
		return nil, ErrInvalidPoint
	}
	if isZero(data) {
		p.inner = curve.Point.Identity()
		return p, nil
	}
	inner, err := curve.Point.FromAffineCompressed(data)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	if !bytes.Equal(inner.ToAffineCompressed(), data) {
		return nil, ErrInvalidPoint
	}
	p.inner = inner
	return p, nil
}

func isZero(data []byte) bool {
	var acc byte
	for _, b := range data {
		acc |= b
	}
	return acc == 0
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(b.(*Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inner.IsIdentity()
}

// Pallas implements [group.Group] for the Pallas curve.
type Pallas struct{}

// Name returns "Pallas".
func (g *Pallas) Name() string {
	return "Pallas"
}

// NewScalar returns a new scalar initialized to zero.
func (g *Pallas) NewScalar() group.Scalar {
	return &Scalar{inner: curve.Scalar.Zero()}
}

// NewPoint returns a new point initialized to the identity element.
func (g *Pallas) NewPoint() group.Point {
	return &Point{inner: curve.Point.Identity()}
}

// Generator returns the Pallas base point (-1, 2).
func (g *Pallas) Generator() group.Point {
	return &Point{inner: generator}
}

// RandomScalar reads 64 bytes from r and reduces them to a uniformly
// distributed scalar.
func (g *Pallas) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	inner, err := curve.Scalar.SetBytesWide(buf[:])
	if err != nil {
		return nil, err
	}
	return &Scalar{inner: inner}, nil
}
