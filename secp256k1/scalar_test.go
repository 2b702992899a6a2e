package secp256k1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModNormalizesNegative(t *testing.T) {
	m := big.NewInt(7)
	got := Mod(big.NewInt(-1), m)
	require.Zero(t, got.Cmp(big.NewInt(6)))
}

func TestInvIsMultiplicativeInverse(t *testing.T) {
	for a := int64(1); a < 50; a++ {
		inv := Inv(big.NewInt(a), N)
		prod := Mod(new(big.Int).Mul(big.NewInt(a), inv), N)
		require.Zero(t, prod.Cmp(big.NewInt(1)), "a=%d", a)
	}
}

func TestInvZeroIsZeroByConvention(t *testing.T) {
	require.Zero(t, Inv(big.NewInt(0), N).Sign())
}

func TestScalarBytesRoundTrip(t *testing.T) {
	s, err := ScalarFromBytes((&big.Int{}).FillBytes(make([]byte, ScalarSize)))
	require.Error(t, err) // all-zero scalar is out of range
	require.Nil(t, s)

	v := big.NewInt(12345)
	b := make([]byte, ScalarSize)
	v.FillBytes(b)

	s, err = ScalarFromBytes(b)
	require.NoError(t, err)
	require.Zero(t, s.Int().Cmp(v))
	require.Equal(t, b, s.Bytes())
}

func TestScalarIsGreaterThanHalfN(t *testing.T) {
	low := NewScalar(big.NewInt(1))
	require.False(t, low.IsGreaterThanHalfN())

	high := NewScalar(new(big.Int).Sub(N, big.NewInt(1)))
	require.True(t, high.IsGreaterThanHalfN())
}

func TestScalarInvert(t *testing.T) {
	s := NewScalar(big.NewInt(42))
	inv := s.Invert()
	require.True(t, s.Multiply(inv).Equal(NewScalar(big.NewInt(1))))
}
