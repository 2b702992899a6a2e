// Package digiid implements the DigiID challenge-response login protocol:
// building the signed URI a wallet is asked to sign, and verifying that a
// claimed DigiByte address actually produced the signature over that
// URI. It is the protocol layer sitting atop secec's curve arithmetic,
// key codecs, and compact-signature ECDSA, the way the teacher's
// `secec/bitcoin` subpackage sits atop its own curve and ECDSA.
package digiid

import (
	"fmt"
	"net/url"

	"github.com/storestartup/digiid-go/secp256k1/secec"
)

// Challenge is an immutable descriptor of a DigiID login attempt: the
// single-use nonce the host generated, the callback URL the wallet
// should report back to, and whether that callback is reachable over a
// secure (HTTPS) transport.
type Challenge struct {
	Nonce    string
	Callback *url.URL
	Secure   bool
}

// NewChallenge parses `callback` as an absolute URL and returns the
// corresponding Challenge.
func NewChallenge(nonce, callback string, secure bool) (*Challenge, error) {
	u, err := url.Parse(callback)
	if err != nil {
		return nil, fmt.Errorf("digiid: invalid callback url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("digiid: callback url must be absolute")
	}

	return &Challenge{Nonce: nonce, Callback: u, Secure: secure}, nil
}

// GenerateURI builds the `digiid://` URI a wallet is asked to sign: the
// callback's scheme is replaced with `digiid`, the query is set to
// `x=<nonce>`, with `u=1` appended when the challenge is not secure.
func GenerateURI(c *Challenge) string {
	u := *c.Callback
	u.Scheme = "digiid"

	query := "x=" + url.QueryEscape(c.Nonce)
	if !c.Secure {
		query += "&u=1"
	}
	u.RawQuery = query

	return u.String()
}

// URIValid reports whether `uri` is exactly the URI this Challenge would
// generate. Per spec, this is raw textual equality: the challenge URI is
// always server-generated in canonical form (see SPEC_FULL.md §9,
// decision 4), so there is no independently-encoded third-party URI to
// normalize against.
func URIValid(c *Challenge, uri string) bool {
	return GenerateURI(c) == uri
}

// QRURL returns a thin, non-cryptographic helper: a Google Chart API URL
// that renders `uri` as a QR code, for hosts that want to display the
// challenge without pulling in their own QR rendering dependency. It is
// explicitly not part of the verification core (spec §1, §6).
func QRURL(uri string) string {
	return "https://chart.googleapis.com/chart?chs=230x230&chld=L|0&cht=qr&chl=" + url.QueryEscape(uri)
}

// SignatureValid implements the DigiID verification procedure: it
// recovers the public key from `signature` over `uri`, derives the
// corresponding DigiByte mainnet P2PKH address, and accepts only if that
// address matches `claimedAddress` AND the signature independently
// verifies against it. Any malformed input (an out-of-range `v`, a zero
// `r` or `s`, a point that doesn't satisfy the curve equation) yields
// `false` rather than a raised error, per spec §7's public-boundary
// policy.
func SignatureValid(uri, claimedAddress string, signature *secec.CompactSignature) bool {
	pt, compressed, err := secec.RecoverCompact(uri, signature)
	if err != nil {
		return false
	}

	format := secec.FormatBin
	if compressed {
		format = secec.FormatBinCompressed
	}

	pubBytes, err := secec.EncodePubKeyBytes(pt, format)
	if err != nil {
		return false
	}
	recoveredAddress, err := secec.PubKeyToAddressBytes(pubBytes, secec.MainnetVersion)
	if err != nil || recoveredAddress != claimedAddress {
		return false
	}

	return secec.VerifyByAddress(uri, signature, claimedAddress, secec.MainnetVersion)
}
