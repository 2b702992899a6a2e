package secec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPubKeyToAddressMatchesRegexAndRoundTrips(t *testing.T) {
	d, ok := new(big.Int).SetString("123456789abcdef123456789abcdef1", 16)
	require.True(t, ok)

	pt, perr := PrivKeyToPubKeyPoint(d)
	require.NoError(t, perr)

	addr, aerr := PubKeyToAddress(pt, FormatBinCompressed, MainnetVersion)
	require.NoError(t, aerr)

	require.True(t, LooksLikeAddress(addr), "address=%s", addr)
	require.True(t, ValidateAddress(addr))

	v, verr := AddressVersion(addr)
	require.NoError(t, verr)
	require.EqualValues(t, MainnetVersion, v)
}

func TestAddressChecksumTamperFails(t *testing.T) {
	pt, err := PrivKeyToPubKeyPoint(big.NewInt(7))
	require.NoError(t, err)

	addr, err := PubKeyToAddress(pt, FormatBinCompressed, MainnetVersion)
	require.NoError(t, err)

	tampered := []byte(addr)
	tampered[len(tampered)-1] ^= 1
	require.False(t, ValidateAddress(string(tampered)))
}
