package secec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPubKeyEncodeDecodeRoundTrip(t *testing.T) {
	d := big.NewInt(424242)
	pt, err := PrivKeyToPubKeyPoint(d)
	require.NoError(t, err)

	formats := []PubKeyFormat{FormatBin, FormatBinCompressed, FormatBinElectrum}
	for _, f := range formats {
		b, err := EncodePubKeyBytes(pt, f)
		require.NoError(t, err)

		got, gotFormat, err := DecodePubKeyBytes(b)
		require.NoError(t, err)
		require.Equal(t, f, gotFormat)
		require.True(t, got.Equal(pt))
	}

	hexFormats := []PubKeyFormat{FormatHex, FormatHexCompressed, FormatHexElectrum}
	for _, f := range hexFormats {
		s, err := EncodePubKeyText(pt, f)
		require.NoError(t, err)

		got, gotFormat, err := DecodePubKeyText(s)
		require.NoError(t, err)
		require.Equal(t, f, gotFormat)
		require.True(t, got.Equal(pt))
	}
}

func TestDecodePubKeyRejectsBadLead(t *testing.T) {
	_, _, err := DecodePubKeyBytes([]byte{0x05, 0x01})
	require.ErrorIs(t, err, ErrFormat)
}

func TestCompressedLeadMatchesYParity(t *testing.T) {
	d := big.NewInt(99)
	pt, err := PrivKeyToPubKeyPoint(d)
	require.NoError(t, err)

	b, err := EncodePubKeyBytes(pt, FormatBinCompressed)
	require.NoError(t, err)

	require.Equal(t, byte(0x02)+byte(pt.Y.Bit(0)), b[0])
}
