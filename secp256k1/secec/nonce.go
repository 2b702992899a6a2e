package secec

import (
	"math/big"

	"github.com/storestartup/digiid-go/internal/hashes"
	"github.com/storestartup/digiid-go/secp256k1"
)

// deterministicK derives the ECDSA nonce `k` from the private scalar `d`
// and the 32-byte message hash, via the HMAC-SHA256 construction in spec
// §4.7.
//
// The reference implementation this spec distills from takes the first
// HMAC-SHA256 output directly as `k`, without RFC6979's rejection loop
// for the (astronomically unlikely) case that the raw output falls
// outside [1, n). Per SPEC_FULL.md's open-question decision, this
// implementation takes the technically correct path and retries,
// re-deriving K/V the standard RFC6979 way, rather than bit-for-bit
// matching the source's unchecked behavior.
func deterministicK(d *big.Int, msgHash [32]byte) *big.Int {
	priv32 := fixed32(d)

	v := bytes32(0x01)
	k := bytes32(0x00)

	k = hashes.HMACSHA256(k, concat(v, []byte{0x00}, priv32, msgHash[:]))
	v = hashes.HMACSHA256(k, v)
	k = hashes.HMACSHA256(k, concat(v, []byte{0x01}, priv32, msgHash[:]))
	v = hashes.HMACSHA256(k, v)

	for {
		v = hashes.HMACSHA256(k, v)
		candidate := new(big.Int).SetBytes(v)
		if candidate.Sign() != 0 && candidate.Cmp(secp256k1.N) < 0 {
			return candidate
		}

		// RFC 6979 section 3.2, step h.3: reject and reseed.
		k = hashes.HMACSHA256(k, append(append([]byte{}, v...), 0x00))
		v = hashes.HMACSHA256(k, v)
	}
}

func bytes32(fill byte) []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = fill
	}
	return b
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
