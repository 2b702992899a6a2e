package secec

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// DERSignature is an ASN.1 DER-encoded `(r, s)` pair, a serialization
// format wallets speaking raw DigiByte/Bitcoin transaction signatures
// use alongside (or instead of) DigiID's compact 65-byte format.
type DERSignature struct {
	R, S *big.Int
}

var errInvalidDERSig = errors.New("secec: invalid ASN.1 signature")

// ParseASN1Signature parses a `SEQUENCE { r INTEGER, s INTEGER }`
// ECDSA-Sig-Value, per SEC 1, Version 2.0, Appendix C.8. Either `r` or
// `s` being zero is treated as an error.
func ParseASN1Signature(data []byte) (*DERSignature, error) {
	var (
		inner          cryptobyte.String
		rBytes, sBytes []byte
	)

	input := cryptobyte.String(data)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&rBytes) ||
		!inner.ReadASN1Integer(&sBytes) ||
		!inner.Empty() {
		return nil, errInvalidDERSig
	}

	r := new(big.Int).SetBytes(rBytes)
	s := new(big.Int).SetBytes(sBytes)
	if r.Sign() == 0 || s.Sign() == 0 {
		return nil, errInvalidDERSig
	}

	return &DERSignature{R: r, S: s}, nil
}

// BuildASN1Signature serializes `(r, s)` into a DER ECDSA-Sig-Value.
func BuildASN1Signature(sig *DERSignature) []byte {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(sig.R)
		b.AddASN1BigInt(sig.S)
	})
	return b.BytesOrPanic()
}

// ParseASN1SignatureBIP0066 parses a BIP-0066 encoded signature with its
// trailing sighash byte stripped, additionally requiring `s <= n/2`, the
// "shitcoin" low-S restriction the teacher's own bitcoin subpackage
// enforces on top of plain DER parsing.
func ParseASN1SignatureBIP0066(sig []byte) (*DERSignature, error) {
	if len(sig) == 0 {
		return nil, errInvalidDERSig
	}
	der, err := ParseASN1Signature(sig[:len(sig)-1])
	if err != nil {
		return nil, err
	}
	if overHalfN(der.S) {
		return nil, errInvalidDERSig
	}
	return der, nil
}
