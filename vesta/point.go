package vesta

import (
	"bytes"

	"github.com/coinbase/kryptology/pkg/core/curves/native/pasta/fp"
	"github.com/coinbase/kryptology/pkg/core/curves/native/pasta/fq"
)

var (
	curveB = new(fq.Fq).SetUint64(5)

	// b3 is 3*b, the constant used by the complete formulas.
	b3 = new(fq.Fq).SetUint64(15)
)

// ep is a Vesta point in homogeneous projective coordinates (X:Y:Z)
// with x = X/Z and y = Y/Z. The identity is (0:1:0).
//
// Addition and doubling use the complete formulas for a = 0 curves from
// Renes, Costello and Batina, "Complete addition formulas for prime order
// elliptic curves" (algorithms 7 and 9), so no input needs special casing.
// All methods allow the receiver to alias an argument.
type ep struct {
	x, y, z fq.Fq
}

func (p *ep) identity() *ep {
	p.x.SetUint64(0)
	p.y.SetOne()
	p.z.SetUint64(0)
	return p
}

// generator sets p to (-1, 2).
func (p *ep) generator() *ep {
	p.x.SetOne()
	p.x.Neg(&p.x)
	p.y.SetUint64(2)
	p.z.SetOne()
	return p
}

func (p *ep) isIdentity() bool {
	return p.z.IsZero()
}

func (p *ep) add(a, b *ep) *ep {
	var t0, t1, t2, t3, t4, x3, y3, z3 fq.Fq
	t0.Mul(&a.x, &b.x)
	t1.Mul(&a.y, &b.y)
	t2.Mul(&a.z, &b.z)
	t3.Add(&a.x, &a.y)
	t4.Add(&b.x, &b.y)
	t3.Mul(&t3, &t4)
	t4.Add(&t0, &t1)
	t3.Sub(&t3, &t4)
	t4.Add(&a.y, &a.z)
	x3.Add(&b.y, &b.z)
	t4.Mul(&t4, &x3)
	x3.Add(&t1, &t2)
	t4.Sub(&t4, &x3)
	x3.Add(&a.x, &a.z)
	y3.Add(&b.x, &b.z)
	x3.Mul(&x3, &y3)
	y3.Add(&t0, &t2)
	y3.Sub(&x3, &y3)
	x3.Add(&t0, &t0)
	t0.Add(&x3, &t0)
	t2.Mul(b3, &t2)
	z3.Add(&t1, &t2)
	t1.Sub(&t1, &t2)
	y3.Mul(b3, &y3)
	x3.Mul(&t4, &y3)
	t2.Mul(&t3, &t1)
	x3.Sub(&t2, &x3)
	y3.Mul(&y3, &t0)
	t1.Mul(&t1, &z3)
	y3.Add(&t1, &y3)
	t0.Mul(&t0, &t3)
	z3.Mul(&z3, &t4)
	z3.Add(&z3, &t0)

	p.x, p.y, p.z = x3, y3, z3
	return p
}

func (p *ep) double(a *ep) *ep {
	var t0, t1, t2, x3, y3, z3 fq.Fq
	t0.Square(&a.y)
	z3.Add(&t0, &t0)
	z3.Add(&z3, &z3)
	z3.Add(&z3, &z3)
	t1.Mul(&a.y, &a.z)
	t2.Square(&a.z)
	t2.Mul(b3, &t2)
	x3.Mul(&t2, &z3)
	y3.Add(&t0, &t2)
	z3.Mul(&t1, &z3)
	t1.Add(&t2, &t2)
	t2.Add(&t1, &t2)
	t0.Sub(&t0, &t2)
	y3.Mul(&t0, &y3)
	y3.Add(&x3, &y3)
	t1.Mul(&a.x, &a.y)
	x3.Mul(&t0, &t1)
	x3.Add(&x3, &x3)

	p.x, p.y, p.z = x3, y3, z3
	return p
}

func (p *ep) neg(a *ep) *ep {
	p.x = a.x
	p.y.Neg(&a.y)
	p.z = a.z
	return p
}

// mul sets p to [s]a using left-to-right double-and-add over the
// canonical bits of s. It is not constant time.
func (p *ep) mul(a *ep, s *fp.Fp) *ep {
	q := *a
	var acc ep
	acc.identity()
	k := s.Bytes()
	for i := len(k)*8 - 1; i >= 0; i-- {
		acc.double(&acc)
		if (k[i/8]>>(uint(i)%8))&1 == 1 {
			acc.add(&acc, &q)
		}
	}
	*p = acc
	return p
}

func (p *ep) equal(b *ep) bool {
	var l, r fq.Fq
	l.Mul(&p.x, &b.z)
	r.Mul(&b.x, &p.z)
	if !l.Equal(&r) {
		return false
	}
	l.Mul(&p.y, &b.z)
	r.Mul(&b.y, &p.z)
	return l.Equal(&r)
}

// onCurve reports whether Y^2 Z = X^3 + b Z^3.
func (p *ep) onCurve() bool {
	var lhs, rhs, t fq.Fq
	lhs.Square(&p.y)
	lhs.Mul(&lhs, &p.z)
	rhs.Square(&p.x)
	rhs.Mul(&rhs, &p.x)
	t.Square(&p.z)
	t.Mul(&t, &p.z)
	t.Mul(&t, curveB)
	rhs.Add(&rhs, &t)
	return lhs.Equal(&rhs)
}

// bytes returns the little-endian affine x-coordinate with the parity of
// y in the top bit, or all zeros for the identity.
func (p *ep) bytes() [EncodingLen]byte {
	var out [EncodingLen]byte
	if p.isIdentity() {
		return out
	}
	var zInv, x, y fq.Fq
	zInv.Invert(&p.z)
	x.Mul(&p.x, &zInv)
	y.Mul(&p.y, &zInv)

	xb := x.Bytes()
	yb := y.Bytes()
	copy(out[:], xb[:])
	out[31] |= (yb[0] & 1) << 7
	return out
}

func (p *ep) setBytes(data []byte) error {
	if len(data) != EncodingLen {
		return ErrInvalidPoint
	}
	var buf [EncodingLen]byte
	copy(buf[:], data)
	sign := buf[31] >> 7
	buf[31] &= 0x7f

	var x fq.Fq
	if _, err := x.SetBytes(&buf); err != nil {
		return ErrInvalidPoint
	}
	if xb := x.Bytes(); !bytes.Equal(xb[:], buf[:]) {
		return ErrInvalidPoint
	}
	if x.IsZero() && sign == 0 {
		p.identity()
		return nil
	}

	var rhs fq.Fq
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	rhs.Add(&rhs, curveB)
	y, ok := new(fq.Fq).Sqrt(&rhs)
	if !ok {
		return ErrInvalidPoint
	}
	if yb := y.Bytes(); yb[0]&1 != sign {
		y.Neg(y)
	}
	// y = 0 cannot carry a sign bit.
	if yb := y.Bytes(); yb[0]&1 != sign {
		return ErrInvalidPoint
	}

	p.x = x
	p.y = *y
	p.z.SetOne()
	return nil
}
