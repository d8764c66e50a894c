package secp256k1

import (
	"errors"
	"io"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/secp256k1"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"

	"github.com/f3rmion/curvebench/group"
)

const (
	// ScalarLen is the size in bytes of an encoded scalar.
	ScalarLen = fr.Bytes
	// PointLen is the size in bytes of a SEC1 compressed point.
	PointLen = 1 + fp.Bytes
)

var (
	// ErrInvalidScalar is returned when scalar bytes are not a canonical
	// big-endian encoding of an integer below the group order.
	ErrInvalidScalar = errors.New("secp256k1: invalid scalar encoding")
	// ErrInvalidPoint is returned when bytes do not encode a curve point.
	ErrInvalidPoint = errors.New("secp256k1: invalid point encoding")
)

var (
	generator, _ = curve.Generators()
	curveB       = new(fp.Element).SetUint64(7)
)

// Scalar represents an element of the secp256k1 scalar field.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element.
type Scalar struct {
	inner fr.Element
}

// Add sets s to a + b (mod n) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod n) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b (mod n) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod n) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(&a.(*Scalar).inner)
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.SetUint64(v)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s.
// Values not below the group order are rejected.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	var v fr.Element
	if err := v.SetBytesCanonical(data); err != nil {
		return nil, ErrInvalidScalar
	}
	s.inner.Set(&v)
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Point represents a point on the secp256k1 curve.
// It implements [group.Point] by wrapping gnark-crypto's G1Jac.
//
// Points are kept in Jacobian coordinates; the identity has Z = 0.
type Point struct {
	inner curve.G1Jac
}

func (p *Point) setIdentity() *Point {
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	p.inner.Z.SetZero()
	return p
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	var r curve.G1Jac
	r.Set(&a.(*Point).inner)
	r.AddAssign(&b.(*Point).inner)
	p.inner.Set(&r)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	var negB curve.G1Jac
	negB.Neg(&b.(*Point).inner)
	var r curve.G1Jac
	r.Set(&a.(*Point).inner)
	r.AddAssign(&negB)
	p.inner.Set(&r)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*Point).inner)
	return p
}

// Double sets p to 2a and returns p.
func (p *Point) Double(a group.Point) group.Point {
	p.inner.Double(&a.(*Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	var k big.Int
	s.(*Scalar).inner.BigInt(&k)
	var r curve.G1Jac
	r.ScalarMultiplication(&q.(*Point).inner, &k)
	p.inner.Set(&r)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the 33-byte SEC1 compressed encoding of p. The identity,
// which SEC1 encodes as a single zero byte, is 33 zero bytes here so that
// the encoding stays fixed width.
func (p *Point) Bytes() []byte {
	out := make([]byte, PointLen)
	if p.IsIdentity() {
		return out
	}
	var a curve.G1Affine
	a.FromJacobian(&p.inner)
	x := a.X.Bytes()
	y := a.Y.Bytes()
	out[0] = 0x02 | (y[fp.Bytes-1] & 1)
	copy(out[1:], x[:])
	return out
}

// SetBytes sets p from a 33-byte SEC1 compressed encoding and returns p.
// secp256k1 has cofactor 1, so any point on the curve is accepted.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != PointLen {
		return nil, ErrInvalidPoint
	}
	if isZero(data) {
		return p.setIdentity(), nil
	}
	prefix := data[0]
	if prefix != 0x02 && prefix != 0x03 {
		return nil, ErrInvalidPoint
	}

	var x fp.Element
	if err := x.SetBytesCanonical(data[1:]); err != nil {
		return nil, ErrInvalidPoint
	}

	// y^2 = x^3 + 7
	var y2, y fp.Element
	y2.Square(&x)
	y2.Mul(&y2, &x)
	y2.Add(&y2, curveB)
	if y.Sqrt(&y2) == nil {
		return nil, ErrInvalidPoint
	}
	if yb := y.Bytes(); yb[fp.Bytes-1]&1 != prefix&1 {
		y.Neg(&y)
	}

	p.inner.X.Set(&x)
	p.inner.Y.Set(&y)
	p.inner.Z.SetOne()
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
	return p.inner.Equal(&b.(*Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

// Secp256k1 implements [group.Group] for the secp256k1 curve.
//
// Secp256k1 is a zero-sized type. Create an instance with &Secp256k1{}
// or new(Secp256k1).
type Secp256k1 struct{}

// Name returns "secp256k1".
func (g *Secp256k1) Name() string {
	return "secp256k1"
}

// NewScalar returns a new scalar initialized to zero.
func (g *Secp256k1) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint returns a new point initialized to the identity element.
func (g *Secp256k1) NewPoint() group.Point {
	return new(Point).setIdentity()
}

// Generator returns the standard SEC 2 base point.
func (g *Secp256k1) Generator() group.Point {
	p := &Point{}
	p.inner.Set(&generator)
	return p
}

// RandomScalar reads 64 bytes from r and reduces them modulo the group
// order, which makes the bias negligible.
func (g *Secp256k1) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := &Scalar{}
	s.inner.SetBytes(buf[:])
	return s, nil
}
