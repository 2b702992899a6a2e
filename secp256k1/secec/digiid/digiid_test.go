package digiid

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storestartup/digiid-go/secp256k1/secec"
)

func TestS4GenerateURISecure(t *testing.T) {
	c, err := NewChallenge("abc123", "https://example.com/cb", true)
	require.NoError(t, err)
	require.Equal(t, "digiid://example.com/cb?x=abc123", GenerateURI(c))
}

func TestS4GenerateURIInsecure(t *testing.T) {
	c, err := NewChallenge("abc123", "https://example.com/cb", false)
	require.NoError(t, err)
	require.Equal(t, "digiid://example.com/cb?x=abc123&u=1", GenerateURI(c))
}

func TestURIValid(t *testing.T) {
	c, err := NewChallenge("abc123", "https://example.com/cb", true)
	require.NoError(t, err)

	require.True(t, URIValid(c, "digiid://example.com/cb?x=abc123"))
	require.False(t, URIValid(c, "digiid://example.com/cb?x=abc124"))
}

func TestS5SignRecoverVerify(t *testing.T) {
	d := big.NewInt(987654321)

	pub, err := secec.PrivKeyToPubKeyPoint(d)
	require.NoError(t, err)

	compressedBytes, err := secec.EncodePubKeyBytes(pub, secec.FormatBinCompressed)
	require.NoError(t, err)

	addr, err := secec.PubKeyToAddressBytes(compressedBytes, secec.MainnetVersion)
	require.NoError(t, err)

	c, err := NewChallenge("n0nce", "https://example.com/callback", true)
	require.NoError(t, err)
	uri := GenerateURI(c)

	sig, err := secec.SignCompact(uri, d, true)
	require.NoError(t, err)

	require.True(t, SignatureValid(uri, addr, sig))
}

func TestS6TamperedURIFailsVerification(t *testing.T) {
	d := big.NewInt(135798642)

	pub, err := secec.PrivKeyToPubKeyPoint(d)
	require.NoError(t, err)
	compressedBytes, err := secec.EncodePubKeyBytes(pub, secec.FormatBinCompressed)
	require.NoError(t, err)
	addr, err := secec.PubKeyToAddressBytes(compressedBytes, secec.MainnetVersion)
	require.NoError(t, err)

	c, err := NewChallenge("tamper-nonce", "https://example.com/callback", true)
	require.NoError(t, err)
	uri := GenerateURI(c)

	sig, err := secec.SignCompact(uri, d, true)
	require.NoError(t, err)

	tampered := uri[:len(uri)-1] + "Z"
	require.False(t, SignatureValid(tampered, addr, sig))
}

func TestSignatureValidRejectsWrongAddress(t *testing.T) {
	d := big.NewInt(24681357)
	c, err := NewChallenge("n", "https://example.com/cb", true)
	require.NoError(t, err)
	uri := GenerateURI(c)

	sig, err := secec.SignCompact(uri, d, true)
	require.NoError(t, err)

	otherD := big.NewInt(99)
	otherPub, err := secec.PrivKeyToPubKeyPoint(otherD)
	require.NoError(t, err)
	otherBytes, err := secec.EncodePubKeyBytes(otherPub, secec.FormatBinCompressed)
	require.NoError(t, err)
	otherAddr, err := secec.PubKeyToAddressBytes(otherBytes, secec.MainnetVersion)
	require.NoError(t, err)

	require.False(t, SignatureValid(uri, otherAddr, sig))
}

func TestSignatureValidRejectsMismatchedCompressionFormat(t *testing.T) {
	d := big.NewInt(445566778899)

	pub, err := secec.PrivKeyToPubKeyPoint(d)
	require.NoError(t, err)

	compressedBytes, err := secec.EncodePubKeyBytes(pub, secec.FormatBinCompressed)
	require.NoError(t, err)
	compressedAddr, err := secec.PubKeyToAddressBytes(compressedBytes, secec.MainnetVersion)
	require.NoError(t, err)

	c, err := NewChallenge("fmt-check", "https://example.com/cb", true)
	require.NoError(t, err)
	uri := GenerateURI(c)

	// Signed uncompressed: recovery must derive the uncompressed address
	// and must not fall back to trying the compressed one, even though
	// both are derivable from the same key.
	sig, err := secec.SignCompact(uri, d, false)
	require.NoError(t, err)

	require.False(t, SignatureValid(uri, compressedAddr, sig))

	uncompressedBytes, err := secec.EncodePubKeyBytes(pub, secec.FormatBin)
	require.NoError(t, err)
	uncompressedAddr, err := secec.PubKeyToAddressBytes(uncompressedBytes, secec.MainnetVersion)
	require.NoError(t, err)
	require.True(t, SignatureValid(uri, uncompressedAddr, sig))
}

func TestSignatureValidMalformedInputIsFalseNotPanic(t *testing.T) {
	sig := &secec.CompactSignature{V: 200, R: big.NewInt(1), S: big.NewInt(1)}
	require.False(t, SignatureValid("digiid://x/y?x=z", "not-an-address", sig))
}

func TestQRURLEmbedsURI(t *testing.T) {
	c, err := NewChallenge("q1", "https://example.com/cb", true)
	require.NoError(t, err)
	uri := GenerateURI(c)

	qr := QRURL(uri)
	require.Contains(t, qr, "chart.googleapis.com")
}

func TestNewChallengeRejectsRelativeURL(t *testing.T) {
	_, err := NewChallenge("n", "/relative/path", true)
	require.Error(t, err)
}
