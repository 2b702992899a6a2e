package secp256k1

import "errors"

// errNotOnCurve indicates a decoded (x, y) pair fails y^2 = x^3 + 7 (mod p).
var errNotOnCurve = errors.New("secp256k1: point is not on the curve")
