package hashes

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestS3SHA256KnownValue(t *testing.T) {
	got := hex.EncodeToString(SHA256([]byte("784734adfids")))
	require.Equal(t, "ae616f5c8f6d338e4905f6170a90a231d0c89470a94b28e894a83aef90975557", got)
}

func TestHash160Length(t *testing.T) {
	require.Len(t, Hash160([]byte("anything")), 20)
}

func TestDoubleSHA256IsShaOfSha(t *testing.T) {
	msg := []byte("digiid")
	want := SHA256(SHA256(msg))
	require.Equal(t, want, DoubleSHA256(msg))
}

func TestVarint(t *testing.T) {
	cases := map[uint64][]byte{
		0:      {0x00},
		252:    {0xFC},
		253:    {0xFD, 0xFD, 0x00},
		65535:  {0xFD, 0xFF, 0xFF},
		65536:  {0xFE, 0x00, 0x00, 0x01, 0x00},
		1 << 32: {0xFF, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00},
	}
	for n, want := range cases {
		require.Equal(t, want, Varint(n), "n=%d", n)
	}
}

func TestElectrumSigHashDeterministic(t *testing.T) {
	a := ElectrumSigHash("digiid://example.com/cb?x=abc123")
	b := ElectrumSigHash("digiid://example.com/cb?x=abc123")
	require.Equal(t, a, b)
	require.Len(t, a, 32)

	c := ElectrumSigHash("digiid://example.com/cb?x=abc124")
	require.NotEqual(t, a, c)
}
