package secec

import (
	"fmt"
	"regexp"

	"github.com/storestartup/digiid-go/internal/base58check"
	"github.com/storestartup/digiid-go/internal/hashes"
	"github.com/storestartup/digiid-go/secp256k1"
)

// MainnetVersion is DigiByte's mainnet P2PKH Base58Check version byte.
const MainnetVersion = 0x1E

// P2SHVersion is DigiByte's multi-sig P2SH Base58Check version byte
// (historically 0x05, now 0x3F).
const P2SHVersion = 0x3F

// addressPattern is the DigiByte address recognition regex from spec §4.6.
// Note that the Base58Check path below only ever decodes the D/S/3-leading
// variants; a `dgb1...` Bech32-style lead matches the regex but has no
// Base58Check payload to decode, per spec §6.
var addressPattern = regexp.MustCompile(`^(D|3|dgb1|S)[a-km-zA-HJ-NP-Z0-9]{26,33}$`)

// LooksLikeAddress reports whether `s` matches the DigiByte address regex.
func LooksLikeAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// PubKeyToAddressBytes derives a Base58Check address from the raw
// serialization of a public key (as produced by EncodePubKeyBytes),
// hashing exactly the bytes of that serialization (e.g. 33 bytes for a
// compressed key, 65 for uncompressed).
func PubKeyToAddressBytes(pubKeyBytes []byte, version uint64) (string, error) {
	payload := hashes.Hash160(pubKeyBytes)
	return base58check.Encode(payload, version)
}

// PubKeyToAddress derives a Base58Check address from a curve point,
// serialized in `format` (which must be one of the binary families).
func PubKeyToAddress(p *secp256k1.Point, format PubKeyFormat, version uint64) (string, error) {
	b, err := EncodePubKeyBytes(p, format)
	if err != nil {
		return "", fmt.Errorf("secec: %w", err)
	}
	return PubKeyToAddressBytes(b, version)
}

// AddressVersion returns the Base58Check version byte of `address`.
func AddressVersion(address string) (byte, error) {
	return base58check.VersionByte(address)
}

// ValidateAddress checks the Base58Check structure and checksum of an
// address string: it must decode to exactly a 1-byte version plus a
// 20-byte HASH160 payload, with a valid trailing checksum.
func ValidateAddress(address string) bool {
	payload, err := base58check.Decode(address)
	if err != nil {
		return false
	}
	return len(payload) == 20
}
