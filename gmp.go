//go:build gmp

package fibext

import "github.com/ncw/gmp"

// GMPArithmetic implements Arithmetic for *gmp.Int, backed by the GNU MP
// library via cgo. Semantically identical to BigArithmetic; GMP's assembly
// kernels make it the faster choice once terms reach tens of thousands of
// bits. Compiled in only under the "gmp" build tag since it requires cgo and
// an installed libgmp.
type GMPArithmetic struct{}

// Zero returns a new gmp.Int set to 0.
func (GMPArithmetic) Zero() *gmp.Int { return new(gmp.Int) }

// One returns a new gmp.Int set to 1.
func (GMPArithmetic) One() *gmp.Int { return gmp.NewInt(1) }

// CheckedAdd returns a+b. The bool is always true.
func (GMPArithmetic) CheckedAdd(a, b *gmp.Int) (*gmp.Int, bool) {
	return new(gmp.Int).Add(a, b), true
}

// WrappingAdd returns the exact sum a+b.
func (GMPArithmetic) WrappingAdd(a, b *gmp.Int) *gmp.Int {
	return new(gmp.Int).Add(a, b)
}

// NewGMP creates a generator over GMP-backed arbitrary-precision integers.
// It never exhausts under either policy.
func NewGMP(policy Policy) *Generator[*gmp.Int] {
	return NewGenerator[*gmp.Int](GMPArithmetic{}, policy)
}
