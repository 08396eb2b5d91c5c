package fibext

import "math/big"

// BigArithmetic implements Arithmetic for *big.Int. An arbitrary-precision
// element never overflows, so CheckedAdd always succeeds and the two overflow
// policies are observably identical for this type.
//
// Every result is a freshly allocated big.Int and the operands are never
// mutated, so values emitted by a generator do not alias its internal state:
// callers may modify an emitted term without disturbing subsequent terms.
type BigArithmetic struct{}

// Zero returns a new big.Int set to 0.
func (BigArithmetic) Zero() *big.Int { return new(big.Int) }

// One returns a new big.Int set to 1.
func (BigArithmetic) One() *big.Int { return big.NewInt(1) }

// CheckedAdd returns a+b. The bool is always true.
func (BigArithmetic) CheckedAdd(a, b *big.Int) (*big.Int, bool) {
	return new(big.Int).Add(a, b), true
}

// WrappingAdd returns the exact sum a+b.
func (BigArithmetic) WrappingAdd(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}
