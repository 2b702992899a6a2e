package base58check

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x01, 0x02, 0x03},
		[]byte("hello world, this is a payload"),
	}
	versions := []uint64{0, 1, 0x1E, 0x3F, 128, 255}

	for _, payload := range payloads {
		for _, version := range versions {
			text, err := Encode(payload, version)
			require.NoError(t, err)

			got, err := Decode(text)
			require.NoError(t, err)
			require.Equal(t, payload, got)

			v, err := VersionByte(text)
			require.NoError(t, err)
			require.EqualValues(t, version, v)
		}
	}
}

func TestChecksumMismatch(t *testing.T) {
	text, err := Encode([]byte("payload"), 0x1E)
	require.NoError(t, err)

	tampered := []byte(text)
	// Flip the last character, which lives inside the checksum's encoding.
	if tampered[len(tampered)-1] == 'a' {
		tampered[len(tampered)-1] = 'b'
	} else {
		tampered[len(tampered)-1] = 'a'
	}

	_, err = Decode(string(tampered))
	require.Error(t, err)
}

func TestLeadingZeroBytesBecomeLeadingOnes(t *testing.T) {
	text, err := Encode([]byte{0x00, 0x00, 0xAB}, 0x00)
	require.NoError(t, err)
	require.True(t, len(text) >= 2 && text[0] == '1' && text[1] == '1')
}
