package fibext

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit halves. It
// fills the width gap between uint64 and the arbitrary-precision types: the
// largest Fibonacci number representable in 128 bits is F(186).
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128From64 widens a uint64 into a Uint128.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Big returns u as a *big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("%d", u.Lo)
	}
	return u.Big().String()
}

// Uint128Arithmetic implements Arithmetic for Uint128 using add-with-carry
// from math/bits.
type Uint128Arithmetic struct{}

// Zero returns the 128-bit zero value.
func (Uint128Arithmetic) Zero() Uint128 { return Uint128{} }

// One returns the 128-bit one value.
func (Uint128Arithmetic) One() Uint128 { return Uint128{Lo: 1} }

// CheckedAdd returns a+b, reporting overflow out of the high half.
func (Uint128Arithmetic) CheckedAdd(a, b Uint128) (Uint128, bool) {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, carry := bits.Add64(a.Hi, b.Hi, carry)
	if carry != 0 {
		return Uint128{}, false
	}
	return Uint128{Hi: hi, Lo: lo}, true
}

// WrappingAdd returns a+b mod 2^128, discarding the final carry.
func (Uint128Arithmetic) WrappingAdd(a, b Uint128) Uint128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}
