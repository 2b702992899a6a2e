// Package secec's ECDSA half: deterministic signing, verification, and
// public-key recovery, using the Bitcoin/Electrum compact-signature
// "recid" convention (`v in [27,34]`), per spec §4.7.
package secec

import (
	"math/big"

	"github.com/storestartup/digiid-go/internal/hashes"
	"github.com/storestartup/digiid-go/secp256k1"
)

func hashToInt(h []byte) *big.Int {
	return new(big.Int).SetBytes(h)
}

// RawSign produces a compact signature `(v, r, s)` over `msgHash` using
// private scalar `d`. `v` is in `[27, 34]`; when `compressed` is true,
// 4 is added to mark the corresponding public key as compressed. `s` is
// always normalized to the lower half, `s < n/2`.
//
// Signing includes a self-verification pass (sign, then verify against
// d's own public key); if that fails, RawSign returns ErrInternalAssert
// rather than emit a signature it cannot corroborate.
func RawSign(msgHash [32]byte, d *big.Int, compressed bool) (v byte, r, s *big.Int, err error) {
	if d.Sign() <= 0 || d.Cmp(secp256k1.N) >= 0 {
		return 0, nil, nil, ErrKeyRange
	}

	z := hashToInt(msgHash[:])
	k := deterministicK(d, msgHash)

	R := secp256k1.BaseScalarMult(k)
	r = secp256k1.Mod(R.X, secp256k1.N)
	if r.Sign() == 0 {
		return 0, nil, nil, ErrInternalAssert
	}

	kInv := secp256k1.Inv(k, secp256k1.N)

	s = new(big.Int).Mul(r, d)
	s.Add(s, z)
	s.Mul(s, kInv)
	s = secp256k1.Mod(s, secp256k1.N)
	if s.Sign() == 0 {
		return 0, nil, nil, ErrInternalAssert
	}

	yOdd := R.Y.Bit(0) == 1
	overHalf := overHalfN(s)

	recVal := byte(0)
	if yOdd {
		recVal ^= 1
	}
	if overHalf {
		recVal ^= 1
	}
	v = 27 + recVal

	if overHalf {
		s = new(big.Int).Sub(secp256k1.N, s)
	}
	if compressed {
		v += 4
	}

	pub, pubErr := PrivKeyToPubKeyPoint(d)
	if pubErr != nil {
		return 0, nil, nil, ErrInternalAssert
	}
	if err := RawVerify(msgHash, v, r, s, pub); err != nil {
		return 0, nil, nil, ErrInternalAssert
	}

	return v, r, s, nil
}

func overHalfN(s *big.Int) bool {
	twice := new(big.Int).Lsh(s, 1)
	return twice.Cmp(secp256k1.N) >= 0
}

// RawVerify verifies a compact signature `(v, r, s)` over `msgHash`
// against public key `pub`. It returns nil iff the signature is valid.
func RawVerify(msgHash [32]byte, v byte, r, s *big.Int, pub *secp256k1.Point) error {
	if v < 27 || v > 34 {
		return ErrCurve
	}

	rm := secp256k1.Mod(r, secp256k1.N)
	sm := secp256k1.Mod(s, secp256k1.N)
	if rm.Sign() == 0 || sm.Sign() == 0 {
		return ErrCurve
	}

	z := hashToInt(msgHash[:])

	w := secp256k1.Inv(s, secp256k1.N)
	u1 := secp256k1.Mod(new(big.Int).Mul(z, w), secp256k1.N)
	u2 := secp256k1.Mod(new(big.Int).Mul(r, w), secp256k1.N)

	p1 := secp256k1.ScalarMult(secp256k1.Generator(), u1)
	p2 := secp256k1.ScalarMult(pub, u2)
	sum := secp256k1.Add(p1, p2)

	if sum.IsInfinity() {
		return ErrCurve
	}

	x := secp256k1.Mod(sum.X, secp256k1.N)
	if x.Cmp(rm) != 0 {
		return ErrCurve
	}

	return nil
}

// RawRecover recovers the public-key point from a compact signature
// `(v, r, s)` over `msgHash`, per spec §4.7's raw recover procedure. It
// assumes `x = r` with no `r + n` overflow case (spec §9, decision #2).
func RawRecover(msgHash [32]byte, v byte, r, s *big.Int) (*secp256k1.Point, error) {
	if v < 27 || v > 34 {
		return nil, ErrCurve
	}

	rm := secp256k1.Mod(r, secp256k1.N)
	sm := secp256k1.Mod(s, secp256k1.N)
	if rm.Sign() == 0 || sm.Sign() == 0 {
		return nil, ErrCurve
	}

	x := r

	alpha := new(big.Int).Mul(x, x)
	alpha.Mul(alpha, x)
	alpha.Add(alpha, secp256k1.B)
	alpha = secp256k1.Mod(alpha, secp256k1.P)

	beta := new(big.Int).Exp(alpha, new(big.Int).Rsh(new(big.Int).Add(secp256k1.P, big.NewInt(1)), 2), secp256k1.P)

	recVal := (v - 27) % 2
	betaOdd := beta.Bit(0) == 1
	wantOdd := recVal == 1

	var y *big.Int
	if betaOdd != wantOdd {
		y = new(big.Int).Sub(secp256k1.P, beta)
	} else {
		y = beta
	}

	check := secp256k1.Mod(new(big.Int).Mul(y, y), secp256k1.P)
	diff := secp256k1.Mod(new(big.Int).Sub(alpha, check), secp256k1.P)
	if diff.Sign() != 0 {
		return nil, ErrCurve
	}

	R := &secp256k1.Point{X: x, Y: y}

	z := hashToInt(msgHash[:])

	rInv := secp256k1.Inv(r, secp256k1.N)

	negZ := secp256k1.Mod(new(big.Int).Neg(z), secp256k1.N)
	term1 := secp256k1.JacobianMultiply(secp256k1.ToJacobian(secp256k1.Generator()), negZ)
	term2 := secp256k1.JacobianMultiply(secp256k1.ToJacobian(R), s)

	sum := secp256k1.FromJacobian(secp256k1.JacobianAdd(term1, term2))
	Q := secp256k1.ScalarMult(sum, rInv)

	return Q, nil
}

// electrumHash is a convenience wrapper that hashes a text message the
// way spec §4.2's ElectrumSigHash does, returning a fixed-size array for
// use with the Raw* functions.
func electrumHash(msg string) [32]byte {
	var out [32]byte
	copy(out[:], hashes.ElectrumSigHash(msg))
	return out
}
