package secp256k1

import "math/big"

// Point represents an affine point on secp256k1. The sentinel (0, 0)
// represents the point at infinity, matching the reference
// implementation's convention (rather than a separate boolean flag).
type Point struct {
	X, Y *big.Int
}

// Infinity returns the point-at-infinity sentinel (0, 0).
func Infinity() *Point {
	return &Point{X: big.NewInt(0), Y: big.NewInt(0)}
}

// Generator returns a fresh copy of the secp256k1 base point G.
func Generator() *Point {
	return &Point{X: new(big.Int).Set(Gx), Y: new(big.Int).Set(Gy)}
}

// IsInfinity reports whether `p` is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// IsOnCurve reports whether `p` satisfies y^2 = x^3 + 7 (mod p). The
// point at infinity is considered on-curve.
func (p *Point) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}

	lhs := Mod(new(big.Int).Mul(p.Y, p.Y), P)

	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	rhs.Add(rhs, B)
	rhs = Mod(rhs, P)

	return lhs.Cmp(rhs) == 0
}

// Equal reports whether `p` and `q` represent the same affine point.
func (p *Point) Equal(q *Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// JacobianPoint represents a point in Jacobian projective coordinates,
// where the affine equivalent is (X/Z^2, Y/Z^3). Y == 0 encodes the
// point at infinity.
type JacobianPoint struct {
	X, Y, Z *big.Int
}

// ToJacobian lifts an affine point into Jacobian coordinates.
func ToJacobian(p *Point) *JacobianPoint {
	if p.IsInfinity() {
		return &JacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(1)}
	}
	return &JacobianPoint{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
		Z: big.NewInt(1),
	}
}

// FromJacobian lowers a Jacobian point back to affine coordinates.
func FromJacobian(j *JacobianPoint) *Point {
	if j.Y.Sign() == 0 {
		return Infinity()
	}

	zInv := Inv(j.Z, P)
	zInv2 := Mod(new(big.Int).Mul(zInv, zInv), P)
	zInv3 := Mod(new(big.Int).Mul(zInv2, zInv), P)

	x := Mod(new(big.Int).Mul(j.X, zInv2), P)
	y := Mod(new(big.Int).Mul(j.Y, zInv3), P)

	return &Point{X: x, Y: y}
}

// jacobianDouble doubles a Jacobian point. `a = 0` for secp256k1 lets the
// usual M = 3X^2 + a*Z^4 term drop the a*Z^4 piece entirely.
func jacobianDouble(p *JacobianPoint) *JacobianPoint {
	if p.Y.Sign() == 0 {
		return &JacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(0)}
	}

	ysq := Mod(new(big.Int).Mul(p.Y, p.Y), P)

	s := new(big.Int).Mul(p.X, ysq)
	s.Mul(s, big.NewInt(4))
	s = Mod(s, P)

	m := new(big.Int).Mul(p.X, p.X)
	m.Mul(m, big.NewInt(3))
	m = Mod(m, P)

	nx := new(big.Int).Mul(m, m)
	nx.Sub(nx, new(big.Int).Mul(big.NewInt(2), s))
	nx = Mod(nx, P)

	ysq2 := Mod(new(big.Int).Mul(ysq, ysq), P)

	ny := new(big.Int).Sub(s, nx)
	ny.Mul(ny, m)
	ny.Sub(ny, new(big.Int).Mul(big.NewInt(8), ysq2))
	ny = Mod(ny, P)

	nz := new(big.Int).Mul(big.NewInt(2), p.Y)
	nz.Mul(nz, p.Z)
	nz = Mod(nz, P)

	return &JacobianPoint{X: nx, Y: ny, Z: nz}
}

// jacobianAdd adds two Jacobian points.
func jacobianAdd(p, q *JacobianPoint) *JacobianPoint {
	if p.Y.Sign() == 0 {
		return q
	}
	if q.Y.Sign() == 0 {
		return p
	}

	qz2 := Mod(new(big.Int).Mul(q.Z, q.Z), P)
	pz2 := Mod(new(big.Int).Mul(p.Z, p.Z), P)

	u1 := Mod(new(big.Int).Mul(p.X, qz2), P)
	u2 := Mod(new(big.Int).Mul(q.X, pz2), P)

	s1 := new(big.Int).Mul(p.Y, q.Z)
	s1.Mul(s1, qz2)
	s1 = Mod(s1, P)

	s2 := new(big.Int).Mul(q.Y, p.Z)
	s2.Mul(s2, pz2)
	s2 = Mod(s2, P)

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) != 0 {
			return &JacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(1)}
		}
		return jacobianDouble(p)
	}

	h := Mod(new(big.Int).Sub(u2, u1), P)
	r := Mod(new(big.Int).Sub(s2, s1), P)

	h2 := Mod(new(big.Int).Mul(h, h), P)
	h3 := Mod(new(big.Int).Mul(h2, h), P)
	u1h2 := Mod(new(big.Int).Mul(u1, h2), P)

	nx := new(big.Int).Mul(r, r)
	nx.Sub(nx, h3)
	nx.Sub(nx, new(big.Int).Mul(big.NewInt(2), u1h2))
	nx = Mod(nx, P)

	ny := new(big.Int).Sub(u1h2, nx)
	ny.Mul(ny, r)
	ny.Sub(ny, new(big.Int).Mul(s1, h3))
	ny = Mod(ny, P)

	nz := new(big.Int).Mul(h, p.Z)
	nz.Mul(nz, q.Z)
	nz = Mod(nz, P)

	return &JacobianPoint{X: nx, Y: ny, Z: nz}
}

// JacobianMultiply computes k*p in Jacobian coordinates, by recursive
// double-and-add over the bits of k, normalized modulo n. Negative k
// wraps around n; k == 0 yields the point at infinity.
func JacobianMultiply(p *JacobianPoint, k *big.Int) *JacobianPoint {
	kk := Mod(k, N)
	if kk.Sign() == 0 || p.Y.Sign() == 0 {
		return &JacobianPoint{X: big.NewInt(0), Y: big.NewInt(0), Z: big.NewInt(1)}
	}
	if kk.Cmp(big.NewInt(1)) == 0 {
		return p
	}

	if new(big.Int).Mod(kk, big.NewInt(2)).Sign() == 0 {
		half := JacobianMultiply(p, new(big.Int).Div(kk, big.NewInt(2)))
		return jacobianDouble(half)
	}

	half := JacobianMultiply(p, new(big.Int).Div(kk, big.NewInt(2)))
	doubled := jacobianDouble(half)
	return jacobianAdd(doubled, p)
}

// JacobianAdd adds two Jacobian points, without the affine round trip
// ScalarMult/Add take -- useful when composing several scalar multiples
// before converting back to affine once, as ECDSA recovery does.
func JacobianAdd(p, q *JacobianPoint) *JacobianPoint {
	return jacobianAdd(p, q)
}

// JacobianDouble doubles a Jacobian point.
func JacobianDouble(p *JacobianPoint) *JacobianPoint {
	return jacobianDouble(p)
}

// ScalarMult computes k*p in affine coordinates.
func ScalarMult(p *Point, k *big.Int) *Point {
	return FromJacobian(JacobianMultiply(ToJacobian(p), k))
}

// Add computes p + q in affine coordinates.
func Add(p, q *Point) *Point {
	return FromJacobian(jacobianAdd(ToJacobian(p), ToJacobian(q)))
}

// Double computes p + p in affine coordinates.
func Double(p *Point) *Point {
	return FromJacobian(jacobianDouble(ToJacobian(p)))
}

// BaseScalarMult computes k*G in affine coordinates.
func BaseScalarMult(k *big.Int) *Point {
	return ScalarMult(Generator(), k)
}

// DecompressY recovers the y-coordinate of the point with x-coordinate
// `x` whose parity matches `yOdd`, using beta = (x^3+7)^((p+1)/4) mod p
// (valid since p ≡ 3 mod 4). Returns an error if x does not correspond
// to a point on the curve.
func DecompressY(x *big.Int, yOdd bool) (*big.Int, error) {
	alpha := new(big.Int).Mul(x, x)
	alpha.Mul(alpha, x)
	alpha.Add(alpha, B)
	alpha = Mod(alpha, P)

	beta := sqrtMod4(alpha)

	betaOdd := beta.Bit(0) == 1
	y := beta
	if betaOdd != yOdd {
		y = new(big.Int).Sub(P, beta)
	}

	check := Mod(new(big.Int).Mul(y, y), P)
	if check.Cmp(alpha) != 0 {
		return nil, errNotOnCurve
	}

	return y, nil
}
