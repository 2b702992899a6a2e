package secec

import (
	"encoding/base64"
	"errors"
	"math/big"

	"github.com/storestartup/digiid-go/secp256k1"
)

// CompactSignature is the Bitcoin/Electrum 65-byte recoverable signature:
// v (1 byte) || r (32 bytes BE) || s (32 bytes BE).
type CompactSignature struct {
	V byte
	R *big.Int
	S *big.Int
}

// Bytes serializes `c` as the raw 65-byte `[v][r:32][s:32]` wire format.
func (c *CompactSignature) Bytes() []byte {
	out := make([]byte, 0, 65)
	out = append(out, c.V)
	out = append(out, fixed32(c.R)...)
	out = append(out, fixed32(c.S)...)
	return out
}

// Base64 returns the base64 encoding of `c.Bytes()`, the DigiID wire
// format for a signed challenge.
func (c *CompactSignature) Base64() string {
	return base64.StdEncoding.EncodeToString(c.Bytes())
}

// ParseCompactSignatureBytes parses a raw 65-byte compact signature.
func ParseCompactSignatureBytes(b []byte) (*CompactSignature, error) {
	if len(b) != 65 {
		return nil, errors.New("secec: compact signature must be 65 bytes")
	}
	return &CompactSignature{
		V: b[0],
		R: new(big.Int).SetBytes(b[1:33]),
		S: new(big.Int).SetBytes(b[33:65]),
	}, nil
}

// ParseCompactSignatureBase64 decodes a base64-encoded compact signature.
func ParseCompactSignatureBase64(s string) (*CompactSignature, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.New("secec: invalid base64 signature")
	}
	return ParseCompactSignatureBytes(b)
}

// SignCompact signs `msg` (treated as an Electrum/DigiByte "signed
// message" text) with private key `d`, returning a CompactSignature.
func SignCompact(msg string, d *big.Int, compressed bool) (*CompactSignature, error) {
	v, r, s, err := RawSign(electrumHash(msg), d, compressed)
	if err != nil {
		return nil, err
	}
	return &CompactSignature{V: v, R: r, S: s}, nil
}

// VerifyCompact verifies a CompactSignature over `msg` against `pub`.
func VerifyCompact(msg string, sig *CompactSignature, pub *secp256k1.Point) bool {
	return RawVerify(electrumHash(msg), sig.V, sig.R, sig.S, pub) == nil
}

// RecoverCompact recovers the public key point from a CompactSignature
// over `msg`, along with whether `v` marks it as compressed.
func RecoverCompact(msg string, sig *CompactSignature) (point *secp256k1.Point, compressed bool, err error) {
	point, err = RawRecover(electrumHash(msg), sig.V, sig.R, sig.S)
	if err != nil {
		return nil, false, err
	}
	return point, sig.V >= 31, nil
}

// VerifyByPubKey verifies a compact signature over `msg` against an
// encoded public key in any recognized format.
func VerifyByPubKey(msg string, sig *CompactSignature, encodedPubKey []byte) bool {
	pt, _, err := DecodePubKeyBytes(encodedPubKey)
	if err != nil {
		return false
	}
	return VerifyCompact(msg, sig, pt)
}

// VerifyByAddress recovers the signer's public key from `sig` over `msg`
// and checks that its address (under `version`, in either compressed or
// uncompressed serialization) matches `address`, then verifies the
// signature against the recovered key.
func VerifyByAddress(msg string, sig *CompactSignature, address string, version uint64) bool {
	pt, err := RawRecover(electrumHash(msg), sig.V, sig.R, sig.S)
	if err != nil {
		return false
	}

	uncompressedBytes, err := EncodePubKeyBytes(pt, FormatBin)
	if err != nil {
		return false
	}
	compressedBytes, err := EncodePubKeyBytes(pt, FormatBinCompressed)
	if err != nil {
		return false
	}

	uncompressedAddr, err := PubKeyToAddressBytes(uncompressedBytes, version)
	if err != nil {
		return false
	}
	compressedAddr, err := PubKeyToAddressBytes(compressedBytes, version)
	if err != nil {
		return false
	}

	if address != uncompressedAddr && address != compressedAddr {
		return false
	}

	return RawVerify(electrumHash(msg), sig.V, sig.R, sig.S, pt) == nil
}

// VerifyAny dispatches on whether `addressOrPubKey` looks like an
// address (verify-by-address) or an encoded public key (raw verify
// against the decoded key, hashing `msg` with ElectrumSigHash), per spec
// §4.7's "verify by anything".
func VerifyAny(msg string, sig *CompactSignature, addressOrPubKey string, version uint64) bool {
	if LooksLikeAddress(addressOrPubKey) {
		return VerifyByAddress(msg, sig, addressOrPubKey, version)
	}

	pt, _, err := DecodePubKeyText(addressOrPubKey)
	if err != nil {
		return false
	}
	return VerifyCompact(msg, sig, pt)
}
