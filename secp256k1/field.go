// Package secp256k1 implements the DigiByte/Bitcoin elliptic curve
// secp256k1: y^2 = x^3 + 7 over GF(p).
//
// Unlike constant-time curve implementations, the arithmetic here is built
// directly on math/big and runs in variable time. That is intentional:
// every input this module's callers feed into curve arithmetic is public
// (a recovered point, a claimed address, a signature), and the spec this
// package implements explicitly does not promise timing-side-channel
// resistance beyond what the underlying big-integer primitive provides.
package secp256k1

import "math/big"

// P is the secp256k1 field prime.
var P, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

// N is the order of the secp256k1 base point (the scalar field size).
var N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// A and B are the secp256k1 curve coefficients: y^2 = x^3 + A*x + B.
var (
	A = big.NewInt(0)
	B = big.NewInt(7)
)

// Gx, Gy are the coordinates of the base point G.
var (
	Gx, _ = new(big.Int).SetString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	Gy, _ = new(big.Int).SetString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", 16)
)

// Mod returns the Euclidean remainder of a mod m, i.e. a value in [0, m)
// even for negative a. It is a thin wrapper over math/big's own Mod, which
// is already Euclidean (unlike big.Int.Rem, the truncating remainder); the
// wrapper exists so every other function in this package goes through one
// explicit, documented "mathematician's mod" call site.
func Mod(a, m *big.Int) *big.Int {
	r := new(big.Int).Mod(a, m)
	return r
}

// PowMod computes base^exp mod m via square-and-multiply.
func PowMod(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// Inv computes the modular inverse of a mod n using the extended
// Euclidean algorithm. By convention, Inv(0, n) = 0.
func Inv(a, n *big.Int) *big.Int {
	if a.Sign() == 0 {
		return big.NewInt(0)
	}

	r := Mod(a, n)
	inv := new(big.Int).ModInverse(r, n)
	if inv == nil {
		return big.NewInt(0)
	}
	return inv
}

// sqrtMod4 computes a square root of `a` mod p, using the fact that
// p ≡ 3 (mod 4): beta = a^((p+1)/4) mod p. The caller is responsible for
// checking that beta^2 == a (mod p), i.e. that `a` is actually a QR.
func sqrtMod4(a *big.Int) *big.Int {
	exp := new(big.Int).Add(P, big.NewInt(1))
	exp.Rsh(exp, 2)
	return PowMod(a, exp, P)
}
