package ristretto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/curvebench/group/grouptest"
)

func TestGroup(t *testing.T) {
	grouptest.Run(t, &Ristretto{})
}

func TestRejectsInvalidEncoding(t *testing.T) {
	g := &Ristretto{}

	t.Run("AllOnes", func(t *testing.T) {
		grouptest.RejectsEncoding(t, g, bytes.Repeat([]byte{0xff}, 32))
	})

	t.Run("NegativeFieldElement", func(t *testing.T) {
		// s = 1 is canonical but negative (odd), which ristretto255 rejects.
		enc := make([]byte, 32)
		enc[0] = 1
		grouptest.RejectsEncoding(t, g, enc)
	})
}

func TestIdentityEncoding(t *testing.T) {
	g := &Ristretto{}
	require.Equal(t, make([]byte, 32), g.NewPoint().Bytes())
}

func TestScalarNonCanonical(t *testing.T) {
	g := &Ristretto{}
	_, err := g.NewScalar().SetBytes(bytes.Repeat([]byte{0xff}, 32))
	require.ErrorIs(t, err, ErrInvalidScalar)
}

func TestScalarWrongLength(t *testing.T) {
	g := &Ristretto{}
	for _, n := range []int{0, 31, 33, 64} {
		require.NotPanics(t, func() {
			_, err := g.NewScalar().SetBytes(make([]byte, n))
			require.ErrorIs(t, err, ErrInvalidScalar, "length %d", n)
		})
	}
}

func TestPointWrongLength(t *testing.T) {
	g := &Ristretto{}
	for _, n := range []int{0, 31, 33} {
		require.NotPanics(t, func() {
			grouptest.RejectsEncoding(t, g, make([]byte, n))
		})
	}
}
