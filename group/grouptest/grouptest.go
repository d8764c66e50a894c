// Package grouptest provides a conformance suite for [group.Group]
// implementations. Curve packages call [Run] from their own tests.
package grouptest

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/curvebench/group"
)

// Run checks the algebraic laws every group implementation must satisfy.
func Run(t *testing.T, g group.Group) {
	t.Helper()
	t.Run("Scalar", func(t *testing.T) { testScalar(t, g) })
	t.Run("Point", func(t *testing.T) { testPoint(t, g) })
}

// RejectsEncoding asserts that data does not decode to a point of g.
func RejectsEncoding(t *testing.T, g group.Group, data []byte) {
	t.Helper()
	p, err := g.NewPoint().SetBytes(data)
	require.Error(t, err, "decoded %x", data)
	require.Nil(t, p)
}

func randomScalar(t *testing.T, g group.Group) group.Scalar {
	t.Helper()
	for {
		s, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		if !s.IsZero() {
			return s
		}
	}
}

func testScalar(t *testing.T, g group.Group) {
	t.Run("NewScalarIsZero", func(t *testing.T) {
		require.True(t, g.NewScalar().IsZero())
	})

	t.Run("FromUint64", func(t *testing.T) {
		one := g.NewScalar().SetUint64(1)
		sum := g.NewScalar()
		sum.Add(sum, one)
		sum.Add(sum, one)
		require.True(t, sum.Equal(g.NewScalar().SetUint64(2)), "0+1+1 != 2")
		require.False(t, one.IsZero())
	})

	t.Run("MinusOne", func(t *testing.T) {
		one := g.NewScalar().SetUint64(1)
		minusOne := g.NewScalar().Sub(g.NewScalar(), one)
		require.True(t, minusOne.Equal(g.NewScalar().Negate(one)), "0-1 != -1")
		require.True(t, g.NewScalar().Add(minusOne, one).IsZero())
	})

	t.Run("AddSub", func(t *testing.T) {
		a := randomScalar(t, g)
		b := randomScalar(t, g)
		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)
		require.True(t, diff.Equal(a), "(a+b)-b != a")
	})

	t.Run("AliasedAdd", func(t *testing.T) {
		two := g.NewScalar().SetUint64(2)
		acc := g.NewScalar()
		for i := 0; i < 5; i++ {
			acc.Add(acc, two)
		}
		require.True(t, acc.Equal(g.NewScalar().SetUint64(10)))
	})

	t.Run("Mul", func(t *testing.T) {
		a := randomScalar(t, g)
		one := g.NewScalar().SetUint64(1)
		require.True(t, g.NewScalar().Mul(a, one).Equal(a), "a*1 != a")
		require.True(t, g.NewScalar().Mul(a, g.NewScalar()).IsZero(), "a*0 != 0")

		three := g.NewScalar().SetUint64(3)
		seven := g.NewScalar().SetUint64(7)
		require.True(t, g.NewScalar().Mul(three, seven).Equal(g.NewScalar().SetUint64(21)))
	})

	t.Run("Negate", func(t *testing.T) {
		a := randomScalar(t, g)
		negA := g.NewScalar().Negate(a)
		require.False(t, a.Equal(negA), "a == -a")
		require.True(t, g.NewScalar().Add(a, negA).IsZero(), "a + (-a) != 0")
	})

	t.Run("Set", func(t *testing.T) {
		a := randomScalar(t, g)
		b := g.NewScalar().Set(a)
		require.True(t, a.Equal(b))
		b.Add(b, g.NewScalar().SetUint64(1))
		require.False(t, a.Equal(b), "Set must copy")
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a := randomScalar(t, g)
		restored, err := g.NewScalar().SetBytes(a.Bytes())
		require.NoError(t, err)
		require.True(t, restored.Equal(a))
	})

	t.Run("SetBytesWrongLength", func(t *testing.T) {
		_, err := g.NewScalar().SetBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})
}

func testPoint(t *testing.T, g group.Group) {
	t.Run("IsIdentity", func(t *testing.T) {
		require.True(t, g.NewPoint().IsIdentity(), "new point should be identity")
		require.False(t, g.Generator().IsIdentity(), "generator should not be identity")
		require.False(t, g.Generator().Equal(g.NewPoint()), "generator == identity")
	})

	t.Run("Constants", func(t *testing.T) {
		require.True(t, g.Generator().Equal(g.Generator()))
		require.True(t, g.NewPoint().Equal(g.NewPoint()))

		// Mutating a returned point must not change the constant.
		gen := g.Generator()
		gen.Double(gen)
		require.False(t, gen.Equal(g.Generator()))
		require.Equal(t, g.Generator().Bytes(), g.Generator().Bytes())
	})

	t.Run("IdentityLaw", func(t *testing.T) {
		gen := g.Generator()
		id := g.NewPoint()
		require.True(t, g.NewPoint().Add(id, gen).Equal(gen), "O+G != G")
		require.True(t, g.NewPoint().Add(gen, id).Equal(gen), "G+O != G")
	})

	t.Run("Double", func(t *testing.T) {
		gen := g.Generator()
		require.True(t, g.NewPoint().Double(gen).Equal(g.NewPoint().Add(gen, gen)), "2G != G+G")

		id := g.NewPoint()
		require.True(t, g.NewPoint().Double(id).Equal(g.NewPoint().Add(id, id)), "2O != O+O")
		require.True(t, g.NewPoint().Double(id).IsIdentity())

		two := g.NewScalar().SetUint64(2)
		require.True(t, g.NewPoint().Double(gen).Equal(g.NewPoint().ScalarMult(two, gen)), "2G != [2]G")
	})

	t.Run("AliasedOps", func(t *testing.T) {
		gen := g.Generator()
		acc := g.NewPoint()
		for i := 0; i < 4; i++ {
			acc.Add(acc, gen)
		}
		dbl := g.Generator()
		dbl.Double(dbl)
		dbl.Double(dbl)
		require.True(t, acc.Equal(dbl), "G+G+G+G != 2(2G)")

		four := g.NewScalar().SetUint64(4)
		mul := g.Generator()
		mul.ScalarMult(four, mul)
		require.True(t, mul.Equal(acc), "[4]G != 4G")
	})

	t.Run("MinusOneTimesGenerator", func(t *testing.T) {
		one := g.NewScalar().SetUint64(1)
		minusOne := g.NewScalar().Sub(g.NewScalar(), one)
		gen := g.Generator()

		sum := g.NewPoint().ScalarMult(minusOne, gen)
		sum.Add(sum, g.NewPoint().ScalarMult(one, gen))
		require.True(t, sum.IsIdentity(), "(-1)G + G != O")

		require.True(t, g.NewPoint().ScalarMult(minusOne, gen).Equal(g.NewPoint().Negate(gen)))
	})

	t.Run("ScalarMultZero", func(t *testing.T) {
		require.True(t, g.NewPoint().ScalarMult(g.NewScalar(), g.Generator()).IsIdentity())
	})

	t.Run("ScalarMultDistributes", func(t *testing.T) {
		a := randomScalar(t, g)
		b := randomScalar(t, g)
		gen := g.Generator()

		lhs := g.NewPoint().ScalarMult(g.NewScalar().Add(a, b), gen)
		rhs := g.NewPoint().Add(
			g.NewPoint().ScalarMult(a, gen),
			g.NewPoint().ScalarMult(b, gen),
		)
		require.True(t, lhs.Equal(rhs), "(a+b)G != aG+bG")

		ab := g.NewPoint().ScalarMult(g.NewScalar().Mul(a, b), gen)
		nested := g.NewPoint().ScalarMult(a, g.NewPoint().ScalarMult(b, gen))
		require.True(t, ab.Equal(nested), "(ab)G != a(bG)")
	})

	t.Run("AddSub", func(t *testing.T) {
		P := g.NewPoint().ScalarMult(randomScalar(t, g), g.Generator())
		Q := g.NewPoint().ScalarMult(randomScalar(t, g), g.Generator())
		sum := g.NewPoint().Add(P, Q)
		diff := g.NewPoint().Sub(sum, Q)
		require.True(t, diff.Equal(P), "(P+Q)-Q != P")
	})

	t.Run("Negate", func(t *testing.T) {
		P := g.NewPoint().ScalarMult(randomScalar(t, g), g.Generator())
		negP := g.NewPoint().Negate(P)
		require.True(t, g.NewPoint().Add(P, negP).IsIdentity(), "P + (-P) != O")
	})

	t.Run("GeneratorRoundtrip", func(t *testing.T) {
		enc := g.Generator().Bytes()
		restored, err := g.NewPoint().SetBytes(enc)
		require.NoError(t, err)
		require.True(t, restored.Equal(g.Generator()))
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			P := g.NewPoint().ScalarMult(randomScalar(t, g), g.Generator())
			enc := P.Bytes()
			require.Len(t, enc, len(g.Generator().Bytes()), "encoding is not fixed width")

			restored, err := g.NewPoint().SetBytes(enc)
			require.NoError(t, err)
			require.True(t, restored.Equal(P))
		}
	})

	t.Run("IdentityRoundtrip", func(t *testing.T) {
		enc := g.NewPoint().Bytes()
		require.Len(t, enc, len(g.Generator().Bytes()))
		restored, err := g.NewPoint().SetBytes(enc)
		require.NoError(t, err)
		require.True(t, restored.IsIdentity())
	})

	t.Run("SetBytesWrongLength", func(t *testing.T) {
		enc := g.Generator().Bytes()
		RejectsEncoding(t, g, enc[:len(enc)-1])
		RejectsEncoding(t, g, nil)
	})
}
