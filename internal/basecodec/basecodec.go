// Package basecodec implements radix conversion between non-negative
// integers, byte strings, and fixed text alphabets, the way pybitcointools
// style libraries implement encode/decode/changebase.
package basecodec

import (
	"errors"
	"math/big"
)

// Base identifies one of the fixed alphabets this package supports.
type Base int

const (
	Base2 Base = 2
	Base10 Base = 10
	Base16 Base = 16
	Base32 Base = 32
	Base58 Base = 58
	Base256 Base = 256
)

const (
	alphabetBin    = "01"
	alphabetDec    = "0123456789"
	alphabetHex    = "0123456789abcdef"
	alphabetB32    = "abcdefghijklmnopqrstuvwxyz234567"
	alphabetB58    = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

var errUnsupportedBase = errors.New("basecodec: unsupported base")

func alphabetFor(base Base) (string, error) {
	switch base {
	case Base2:
		return alphabetBin, nil
	case Base10:
		return alphabetDec, nil
	case Base16:
		return alphabetHex, nil
	case Base32:
		return alphabetB32, nil
	case Base58:
		return alphabetB58, nil
	case Base256:
		return "", nil // byte alphabet, handled separately
	default:
		return "", errUnsupportedBase
	}
}

// padElement returns the element used to left-pad output in `base` up to
// `minlen`: the zero byte for base 256, '1' for base 58, '0' otherwise.
func padElement(base Base) byte {
	switch base {
	case Base256:
		return 0x00
	case Base58:
		return '1'
	default:
		return '0'
	}
}

// Encode emits the digits of the non-negative integer `value` in `base`,
// left-padded to `minlen` with the base's padding element. Base256 returns
// raw bytes; every other base returns the alphabet's text encoding.
func Encode(value *big.Int, base Base, minlen int) ([]byte, error) {
	if value.Sign() < 0 {
		return nil, errors.New("basecodec: value must be non-negative")
	}

	if base == Base256 {
		return leftPad(value.Bytes(), minlen, padElement(Base256)), nil
	}

	alphabet, err := alphabetFor(base)
	if err != nil {
		return nil, err
	}

	if value.Sign() == 0 {
		return leftPad(nil, minlen, padElement(base)), nil
	}

	radix := big.NewInt(int64(base))
	v := new(big.Int).Set(value)
	mod := new(big.Int)

	var digits []byte
	for v.Sign() > 0 {
		v.DivMod(v, radix, mod)
		digits = append(digits, alphabet[mod.Int64()])
	}
	reverse(digits)

	return leftPad(digits, minlen, padElement(base)), nil
}

// Decode inverts Encode: it parses `input` (raw bytes for base 256, text
// for every other base) and returns the integer it represents.
func Decode(input []byte, base Base) (*big.Int, error) {
	if base == Base256 {
		return new(big.Int).SetBytes(input), nil
	}

	alphabet, err := alphabetFor(base)
	if err != nil {
		return nil, err
	}

	index := make(map[byte]int64, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		index[alphabet[i]] = int64(i)
	}

	radix := big.NewInt(int64(base))
	result := new(big.Int)
	for _, c := range input {
		d, ok := index[c]
		if !ok {
			return nil, errors.New("basecodec: invalid digit for base")
		}
		result.Mul(result, radix)
		result.Add(result, big.NewInt(d))
	}

	return result, nil
}

// Changebase decodes `input` in base `from` and re-encodes it in base
// `to`, left-padded to `minlen`. When `from == to` it only re-pads.
func Changebase(input []byte, from, to Base, minlen int) ([]byte, error) {
	if from == to {
		pad := padElement(to)
		return leftPad(append([]byte(nil), input...), minlen, pad), nil
	}

	value, err := Decode(input, from)
	if err != nil {
		return nil, err
	}
	return Encode(value, to, minlen)
}

func leftPad(b []byte, minlen int, pad byte) []byte {
	if len(b) >= minlen {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	out := make([]byte, minlen)
	for i := 0; i < minlen-len(b); i++ {
		out[i] = pad
	}
	copy(out[minlen-len(b):], b)
	return out
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
