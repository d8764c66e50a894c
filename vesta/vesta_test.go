package vesta

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/curvebench/group/grouptest"
)

func TestGroup(t *testing.T) {
	grouptest.Run(t, &Vesta{})
}

func TestVectors(t *testing.T) {
	g := &Vesta{}

	cases := []struct {
		k    uint64
		want string
	}{
		{0, "0000000000000000000000000000000000000000000000000000000000000000"},
		{1, "0000000021eb468cdda89409fc98462200000000000000000000000000000040"},
		{2, "03000070de065fede0093144eee2fe0e0000000000000000000000000000001c"},
		{7, "d9b64d40adcf7b8c3155141bc2e813c9c83d49cc66c199856d118b9530ebccb7"},
	}
	for _, tc := range cases {
		k := g.NewScalar().SetUint64(tc.k)
		P := g.NewPoint().ScalarMult(k, g.Generator())
		require.Equal(t, tc.want, hex.EncodeToString(P.Bytes()), "[%d]G", tc.k)

		enc, err := hex.DecodeString(tc.want)
		require.NoError(t, err)
		decoded, err := g.NewPoint().SetBytes(enc)
		require.NoError(t, err)
		require.True(t, decoded.Equal(P))
	}
}

func TestOnCurve(t *testing.T) {
	var p ep
	require.True(t, p.generator().onCurve())
	require.True(t, p.identity().onCurve())

	var q ep
	q.generator()
	for i := 0; i < 10; i++ {
		q.double(&q)
		q.add(&q, &p)
		require.True(t, q.onCurve())
	}
}

func TestGroupOrder(t *testing.T) {
	// -1 * G + G = [p]G.
	var gen, acc ep
	gen.generator()
	var s Scalar
	s.SetUint64(1)
	s.Negate(&s)
	acc.mul(&gen, &s.inner)
	acc.add(&acc, &gen)
	require.True(t, acc.isIdentity())
}

func TestRejectsInvalidEncoding(t *testing.T) {
	g := &Vesta{}

	t.Run("AllOnes", func(t *testing.T) {
		grouptest.RejectsEncoding(t, g, bytes.Repeat([]byte{0xff}, EncodingLen))
	})

	t.Run("ZeroXWithSign", func(t *testing.T) {
		// 5 is not a square mod q, so there is no point with x = 0.
		enc := make([]byte, EncodingLen)
		enc[31] = 0x80
		grouptest.RejectsEncoding(t, g, enc)
	})

	t.Run("UnreducedX", func(t *testing.T) {
		// x = q, the base field modulus, which would reduce to the
		// identity encoding.
		enc, err := hex.DecodeString("0100000021eb468cdda89409fc98462200000000000000000000000000000040")
		require.NoError(t, err)
		grouptest.RejectsEncoding(t, g, enc)
	})

	t.Run("NotOnCurve", func(t *testing.T) {
		// x = 2: 13 is not a square mod q.
		enc := make([]byte, EncodingLen)
		enc[0] = 2
		grouptest.RejectsEncoding(t, g, enc)
	})
}

func TestScalarNonCanonical(t *testing.T) {
	g := &Vesta{}
	for _, h := range []string{
		// p, the group order.
		"01000000ed302d991bf94c09fc98462200000000000000000000000000000040",
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"0000000000000000000000000000000000000000000000000000000000000080",
	} {
		enc, err := hex.DecodeString(h)
		require.NoError(t, err)
		s, err := g.NewScalar().SetBytes(enc)
		require.ErrorIs(t, err, ErrInvalidScalar, h)
		require.Nil(t, s)
	}

	// p - 1 is the largest canonical scalar.
	enc, err := hex.DecodeString("00000000ed302d991bf94c09fc98462200000000000000000000000000000040")
	require.NoError(t, err)
	s, err := g.NewScalar().SetBytes(enc)
	require.NoError(t, err)
	require.True(t, s.Equal(g.NewScalar().Negate(g.NewScalar().SetUint64(1))))
}
