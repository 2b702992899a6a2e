// Package base58check implements Base58Check: a payload prefixed with a
// version byte and suffixed with a 4-byte double-SHA256 checksum, encoded
// over the Bitcoin/DigiByte Base58 alphabet.
package base58check

import (
	"errors"

	"github.com/storestartup/digiid-go/internal/basecodec"
	"github.com/storestartup/digiid-go/internal/hashes"
)

// ErrChecksum is returned by Decode when the trailing 4 bytes do not match
// dsha256(head)[0:4].
var ErrChecksum = errors.New("base58check: checksum mismatch")

const checksumLen = 4

// Encode prepends `version` to `payload` (splitting `version` into
// successive big-endian-order bytes if it exceeds 255, the way the
// reference implementation's `bin_to_b58check` does), appends the 4-byte
// double-SHA256 checksum, and Base58-encodes the result with one leading
// '1' per leading zero byte of version||payload||checksum.
func Encode(payload []byte, version uint64) (string, error) {
	versioned := append(versionBytes(version), payload...)

	checksum := hashes.DoubleSHA256(versioned)[:checksumLen]
	full := append(versioned, checksum...)

	leadingZeros := 0
	for leadingZeros < len(full) && full[leadingZeros] == 0 {
		leadingZeros++
	}

	body, err := basecodec.Changebase(full, basecodec.Base256, basecodec.Base58, 0)
	if err != nil {
		return "", err
	}

	out := make([]byte, 0, leadingZeros+len(body))
	for i := 0; i < leadingZeros; i++ {
		out = append(out, '1')
	}
	out = append(out, body...)

	return string(out), nil
}

// Decode Base58-decodes `text`, verifies the trailing checksum, and
// returns the payload with both the version prefix and checksum removed.
// Use VersionByte to recover the stripped version byte.
func Decode(text string) ([]byte, error) {
	full, err := decodeFull(text)
	if err != nil {
		return nil, err
	}
	if len(full) < checksumLen+1 {
		return nil, errors.New("base58check: input too short")
	}

	head := full[:len(full)-checksumLen]
	tail := full[len(full)-checksumLen:]

	want := hashes.DoubleSHA256(head)[:checksumLen]
	for i := range want {
		if want[i] != tail[i] {
			return nil, ErrChecksum
		}
	}

	return head[1:], nil
}

// VersionByte returns the single version byte of a Base58Check string
// that was encoded with `version < 256`.
func VersionByte(text string) (byte, error) {
	full, err := decodeFull(text)
	if err != nil {
		return 0, err
	}
	if len(full) == 0 {
		return 0, errors.New("base58check: empty payload")
	}
	return full[0], nil
}

func decodeFull(text string) ([]byte, error) {
	leadingOnes := 0
	for leadingOnes < len(text) && text[leadingOnes] == '1' {
		leadingOnes++
	}

	value, err := basecodec.Decode([]byte(text[leadingOnes:]), basecodec.Base58)
	if err != nil {
		return nil, err
	}

	body := value.Bytes()
	full := make([]byte, leadingOnes+len(body))
	copy(full[leadingOnes:], body)

	return full, nil
}

func versionBytes(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var b []byte
	for v > 0 {
		b = append([]byte{byte(v % 256)}, b...)
		v /= 256
	}
	return b
}
