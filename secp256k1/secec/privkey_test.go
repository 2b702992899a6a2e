package secec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWIFRoundTrip(t *testing.T) {
	d := big.NewInt(13)

	for _, compressed := range []bool{false, true} {
		wif, err := EncodePrivKeyWIF(d, MainnetVersion, compressed)
		require.NoError(t, err)

		gotD, gotCompressed, err := DecodePrivKeyWIF(wif)
		require.NoError(t, err)
		require.Zero(t, gotD.Cmp(d))
		require.Equal(t, compressed, gotCompressed)
	}
}

func TestDecodePrivKeyDetectsHexFamily(t *testing.T) {
	hex, err := EncodePrivKey(big.NewInt(7), FormatPrivHex, 0)
	require.NoError(t, err)

	d, compressed, err := DecodePrivKey(hex)
	require.NoError(t, err)
	require.False(t, compressed)
	require.Zero(t, d.Cmp(big.NewInt(7)))

	hexC, err := EncodePrivKey(big.NewInt(7), FormatPrivHexCompressed, 0)
	require.NoError(t, err)

	d, compressed, err = DecodePrivKey(hexC)
	require.NoError(t, err)
	require.True(t, compressed)
	require.Zero(t, d.Cmp(big.NewInt(7)))
}

func TestPrivKeyToPubKeyTextFamilySwitch(t *testing.T) {
	wif, err := EncodePrivKeyWIF(big.NewInt(321), 0x80, true)
	require.NoError(t, err)

	pub, err := PrivKeyToPubKeyText(wif)
	require.NoError(t, err)

	_, format, err := DecodePubKeyText(pub)
	require.NoError(t, err)
	require.Equal(t, FormatHexCompressed, format)
}

func TestPrivKeyRangeRejected(t *testing.T) {
	_, err := PrivKeyToPubKeyPoint(big.NewInt(0))
	require.ErrorIs(t, err, ErrKeyRange)
}
