// Package hashes implements the primitive hash functions the rest of the
// module builds on: SHA-256, RIPEMD-160, HMAC-SHA256, their HASH160 and
// double-SHA256 compositions, and the DigiByte "signed message" tagged
// hash used before ECDSA signing/verification of wallet messages.
package hashes

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // matches petiibhuzah-golang-blockchain's wallet hashing
)

const magic = "DigiByte Signed Message:\n"

// SHA256 returns the SHA-256 digest of `b`.
func SHA256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// RIPEMD160 returns the RIPEMD-160 digest of `b`.
func RIPEMD160(b []byte) []byte {
	h := ripemd160.New()
	_, _ = h.Write(b) // ripemd160.digest.Write never errors.
	return h.Sum(nil)
}

// Hash160 returns RIPEMD160(SHA256(b)).
func Hash160(b []byte) []byte {
	return RIPEMD160(SHA256(b))
}

// DoubleSHA256 returns SHA256(SHA256(b)).
func DoubleSHA256(b []byte) []byte {
	return SHA256(SHA256(b))
}

// HMACSHA256 returns HMAC-SHA256(key, msg).
func HMACSHA256(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	_, _ = mac.Write(msg) // hmac.Write never errors.
	return mac.Sum(nil)
}

// Varint encodes `n` the way Bitcoin/DigiByte's CompactSize does: one byte
// for n < 253, a 0xFD prefix plus two little-endian bytes for n < 2^16, a
// 0xFE prefix plus four for n < 2^32, else a 0xFF prefix plus eight.
func Varint(n uint64) []byte {
	switch {
	case n < 253:
		return []byte{byte(n)}
	case n <= 0xFFFF:
		return []byte{0xFD, byte(n), byte(n >> 8)}
	case n <= 0xFFFFFFFF:
		return []byte{0xFE, byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	default:
		return []byte{
			0xFF,
			byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24),
			byte(n >> 32), byte(n >> 40), byte(n >> 48), byte(n >> 56),
		}
	}
}

// ElectrumSigHash computes the DigiByte "signed message" hash of a text
// message: dsha256(0x19 || "DigiByte Signed Message:\n" || varint(len(msg)) || msg).
//
// 0x19 (25) is the length of the magic string itself and is folded into
// the varint-prefixed byte stream ahead of it, matching the Electrum
// message-signing convention DigiByte inherited from Bitcoin.
func ElectrumSigHash(msg string) []byte {
	msgBytes := []byte(msg)

	buf := make([]byte, 0, 1+len(magic)+9+len(msgBytes))
	buf = append(buf, byte(len(magic)))
	buf = append(buf, magic...)
	buf = append(buf, Varint(uint64(len(msgBytes)))...)
	buf = append(buf, msgBytes...)

	return DoubleSHA256(buf)
}
