package secec

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/storestartup/digiid-go/internal/base58check"
	"github.com/storestartup/digiid-go/secp256k1"
)

// PrivKeyFormat tags the encoding of a private key.
type PrivKeyFormat int

const (
	// FormatPrivDecimal is a plain base-10 integer in [1, n).
	FormatPrivDecimal PrivKeyFormat = iota
	// FormatPrivBin is 32 raw big-endian bytes.
	FormatPrivBin
	// FormatPrivHex is 64 lowercase hex characters.
	FormatPrivHex
	// FormatPrivBinCompressed is 33 raw bytes: the 32-byte scalar with a
	// trailing 0x01 marking the corresponding public key as compressed.
	FormatPrivBinCompressed
	// FormatPrivHexCompressed is the hex text of FormatPrivBinCompressed (66 chars).
	FormatPrivHexCompressed
	// FormatPrivWIF is Base58Check(32 bytes, version=128+netByte).
	FormatPrivWIF
	// FormatPrivWIFCompressed is Base58Check(32 bytes || 0x01, version=128+netByte).
	FormatPrivWIFCompressed
)

// IsCompressed reports whether `f` marks the corresponding public key as
// compressed.
func (f PrivKeyFormat) IsCompressed() bool {
	return f == FormatPrivBinCompressed || f == FormatPrivHexCompressed || f == FormatPrivWIFCompressed
}

// EncodePrivKeyWIF returns the WIF (optionally compressed) encoding of
// the scalar `d` for network version byte `netByte`.
func EncodePrivKeyWIF(d *big.Int, netByte uint64, compressed bool) (string, error) {
	payload := fixed32(d)
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58check.Encode(payload, 128+netByte)
}

// DecodePrivKeyWIF decodes a WIF-encoded private key, returning the
// scalar and whether it marks a compressed public key.
func DecodePrivKeyWIF(text string) (*big.Int, bool, error) {
	payload, err := base58check.Decode(text)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	switch len(payload) {
	case 32:
		return new(big.Int).SetBytes(payload), false, nil
	case 33:
		if payload[32] != 0x01 {
			return nil, false, ErrFormat
		}
		return new(big.Int).SetBytes(payload[:32]), true, nil
	default:
		return nil, false, ErrFormat
	}
}

// DetectPrivKeyFormat sniffs the format of a private key given as text
// (hex, hex_compressed, or WIF/WIF-compressed). Decimal text is not one of
// the detected formats.
func DetectPrivKeyFormat(s string) (PrivKeyFormat, error) {
	switch {
	case len(s) == 64 && isHexString(s):
		return FormatPrivHex, nil
	case len(s) == 66 && isHexString(s):
		return FormatPrivHexCompressed, nil
	case looksLikeBase58(s):
		payload, err := base58check.Decode(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		switch len(payload) {
		case 32:
			return FormatPrivWIF, nil
		case 33:
			return FormatPrivWIFCompressed, nil
		}
		return 0, ErrFormat
	default:
		return 0, ErrFormat
	}
}

// DecodePrivKey decodes a private key given as text in any recognized
// format into its scalar and compression flag.
func DecodePrivKey(s string) (*big.Int, bool, error) {
	format, err := DetectPrivKeyFormat(s)
	if err != nil {
		return nil, false, err
	}

	switch format {
	case FormatPrivHex:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		return new(big.Int).SetBytes(b), false, nil
	case FormatPrivHexCompressed:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if len(b) != 33 || b[32] != 0x01 {
			return nil, false, ErrFormat
		}
		return new(big.Int).SetBytes(b[:32]), true, nil
	case FormatPrivWIF, FormatPrivWIFCompressed:
		return DecodePrivKeyWIF(s)
	default:
		return nil, false, ErrFormat
	}
}

// EncodePrivKey encodes a private scalar in the family (hex-ish vs.
// WIF-ish) dictated by `format`.
func EncodePrivKey(d *big.Int, format PrivKeyFormat, netByte uint64) (string, error) {
	switch format {
	case FormatPrivDecimal:
		return d.String(), nil
	case FormatPrivHex:
		return hex.EncodeToString(fixed32(d)), nil
	case FormatPrivHexCompressed:
		return hex.EncodeToString(append(fixed32(d), 0x01)), nil
	case FormatPrivWIF:
		return EncodePrivKeyWIF(d, netByte, false)
	case FormatPrivWIFCompressed:
		return EncodePrivKeyWIF(d, netByte, true)
	default:
		return "", ErrFormat
	}
}

// PrivKeyToPubKeyPoint computes d*G.
func PrivKeyToPubKeyPoint(d *big.Int) (*secp256k1.Point, error) {
	if d.Sign() <= 0 || d.Cmp(secp256k1.N) >= 0 {
		return nil, ErrKeyRange
	}
	return secp256k1.BaseScalarMult(d), nil
}

// PrivKeyToPubKeyText derives the hex-family public key corresponding to
// a private key given in any recognized text format: `wif*` inputs
// produce `hex*` outputs, and hex-family inputs keep their own family, per
// spec §4.6.
func PrivKeyToPubKeyText(privKeyText string) (string, error) {
	d, compressed, err := DecodePrivKey(privKeyText)
	if err != nil {
		return "", err
	}

	pt, err := PrivKeyToPubKeyPoint(d)
	if err != nil {
		return "", err
	}

	format := FormatHex
	if compressed {
		format = FormatHexCompressed
	}
	return EncodePubKeyText(pt, format)
}

func isHexString(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func looksLikeBase58(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '1' && c <= '9':
		case c >= 'A' && c <= 'Z' && c != 'I' && c != 'O':
		case c >= 'a' && c <= 'z' && c != 'l':
		default:
			return false
		}
	}
	return true
}
