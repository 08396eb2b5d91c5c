// Package fibext generates the Fibonacci sequence over generic unsigned
// integer element types.
//
// The same recurrence (next = current + previous) runs uniformly over all
// fixed-width unsigned integers, a 128-bit pair type, and arbitrary-precision
// integers. Overflow handling is selected per generator instance: the Checked
// policy ends the sequence cleanly at the last representable step, while the
// Wrapping policy reduces every sum modulo the type's range and never
// terminates.
package fibext

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is the single error kind of this package: the sum of two
// element values exceeded the type's representable range. It is surfaced by
// FillSequence; Generator reports the same condition as exhaustion rather
// than as an error.
var ErrOverflow = errors.New("arithmetic operation overflowed")

// Policy selects how a generator handles arithmetic overflow.
type Policy int

const (
	// Wrapping reduces every sum modulo the element type's range. The
	// sequence never terminates; past the type's maximum the emitted values
	// are the true Fibonacci numbers reduced mod 2^bitwidth. This is the
	// default policy.
	Wrapping Policy = iota

	// Checked detects overflow and ends the sequence at the last step whose
	// lookahead sum is still representable. Exhaustion is terminal.
	Checked
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Wrapping:
		return "wrapping"
	case Checked:
		return "checked"
	default:
		return "unknown"
	}
}

// Arithmetic is the capability set an element type must provide to be usable
// with a Generator. Implementations are stateless value types; the generator
// never mutates its operands, so implementations over pointer types must
// return freshly allocated results.
type Arithmetic[T any] interface {
	// Zero returns the additive identity, the first seed value.
	Zero() T
	// One returns the multiplicative unit, the second seed value.
	One() T
	// CheckedAdd returns a+b and true if the sum is representable, or the
	// zero value and false on overflow.
	CheckedAdd(a, b T) (T, bool)
	// WrappingAdd returns a+b reduced modulo the type's range. For
	// unbounded types it is the exact sum.
	WrappingAdd(a, b T) T
}

// UintArithmetic implements Arithmetic for every fixed-width unsigned
// builtin. The zero-size struct carries no state; UintArithmetic[uint8]{} is
// a complete, ready-to-use capability value.
type UintArithmetic[T constraints.Unsigned] struct{}

// Zero returns 0.
func (UintArithmetic[T]) Zero() T { return 0 }

// One returns 1.
func (UintArithmetic[T]) One() T { return 1 }

// CheckedAdd returns a+b, detecting unsigned overflow. Unsigned addition
// wraps in Go, so the sum overflowed exactly when it is smaller than an
// operand.
func (UintArithmetic[T]) CheckedAdd(a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		var zero T
		return zero, false
	}
	return sum, true
}

// WrappingAdd returns a+b mod 2^bitwidth, which is Go's native unsigned
// addition.
func (UintArithmetic[T]) WrappingAdd(a, b T) T { return a + b }
