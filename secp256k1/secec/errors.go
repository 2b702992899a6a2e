// Package secec implements public/private key codecs, address derivation,
// and compact-signature ECDSA with public-key recovery on top of the
// secp256k1 curve, using the Bitcoin/Electrum "recid" convention. The API
// mirrors the shape of `gitlab.com/yawning/secp256k1-voi/secec`, adapted
// to the format-polymorphic encodings spec DigiID wallets use.
package secec

import "errors"

// Error kinds, matching spec's error taxonomy.
var (
	// ErrFormat indicates a pubkey/privkey/WIF/base58 input that does not
	// match any recognized layout.
	ErrFormat = errors.New("secec: unrecognized key format")

	// ErrChecksum indicates a Base58Check tail that does not match the
	// payload's double-SHA256 checksum.
	ErrChecksum = errors.New("secec: base58check checksum mismatch")

	// ErrCurve indicates a decoded point fails the curve equation, or a
	// recovered/decoded `v` is out of range, or `r`/`s` is zero mod n.
	ErrCurve = errors.New("secec: point is not on secp256k1")

	// ErrKeyRange indicates a private scalar is zero or >= n.
	ErrKeyRange = errors.New("secec: private key out of range")

	// ErrInternalAssert indicates a violated arithmetic invariant; it
	// should never be observed in practice and signals a bug.
	ErrInternalAssert = errors.New("secec: internal invariant violated")
)
