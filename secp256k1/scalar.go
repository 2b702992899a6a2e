package secp256k1

import (
	"crypto/subtle"
	"errors"
	"math/big"
)

// ScalarSize is the size, in bytes, of a scalar's big-endian encoding.
const ScalarSize = 32

// ErrScalarRange is returned when a decoded scalar is zero or >= N.
var ErrScalarRange = errors.New("secp256k1: scalar out of range [1, n)")

// Scalar is an integer modulo N (the order of the curve), used for
// private keys and the `r`/`s` components of a signature.
type Scalar struct {
	v *big.Int
}

// NewScalar wraps `v` as a Scalar, reducing it modulo N first.
func NewScalar(v *big.Int) *Scalar {
	return &Scalar{v: Mod(v, N)}
}

// ScalarFromBytes decodes a 32-byte big-endian scalar. It returns
// ErrScalarRange if the result is zero or >= N.
func ScalarFromBytes(b []byte) (*Scalar, error) {
	v := new(big.Int).SetBytes(b)
	if v.Sign() == 0 || v.Cmp(N) >= 0 {
		return nil, ErrScalarRange
	}
	return &Scalar{v: v}, nil
}

// Int returns a copy of the integer underlying `s`.
func (s *Scalar) Int() *big.Int {
	return new(big.Int).Set(s.v)
}

// Bytes returns the 32-byte big-endian encoding of `s`.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, ScalarSize)
	b := s.v.Bytes()
	copy(out[ScalarSize-len(b):], b)
	return out
}

// IsZero reports whether `s` is zero.
func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Equal reports whether `s` and `t` are equal, in constant time.
func (s *Scalar) Equal(t *Scalar) bool {
	return subtle.ConstantTimeCompare(s.Bytes(), t.Bytes()) == 1
}

// Add returns s + t mod N.
func (s *Scalar) Add(t *Scalar) *Scalar {
	return NewScalar(new(big.Int).Add(s.v, t.v))
}

// Multiply returns s * t mod N.
func (s *Scalar) Multiply(t *Scalar) *Scalar {
	return NewScalar(new(big.Int).Mul(s.v, t.v))
}

// Negate returns -s mod N.
func (s *Scalar) Negate() *Scalar {
	return NewScalar(new(big.Int).Neg(s.v))
}

// Invert returns the modular inverse of s mod N.
func (s *Scalar) Invert() *Scalar {
	return &Scalar{v: Inv(s.v, N)}
}

// IsGreaterThanHalfN reports whether 2*s >= N, the low-S boundary test.
func (s *Scalar) IsGreaterThanHalfN() bool {
	twice := new(big.Int).Lsh(s.v, 1)
	return twice.Cmp(N) >= 0
}

// Zeroize overwrites the scalar's backing integer with zero. Best-effort:
// Go's garbage collector and big.Int's variable-width words mean this is
// not the same guarantee a fixed-width, constant-time field element gives,
// but it still removes the value from the one slice we control once the
// caller is done with it.
func (s *Scalar) Zeroize() {
	words := s.v.Bits()
	for i := range words {
		words[i] = 0
	}
	s.v.SetInt64(0)
}
