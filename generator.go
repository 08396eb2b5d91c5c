package fibext

import (
	"iter"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Generator lazily produces the Fibonacci sequence 0, 1, 1, 2, 3, 5, 8, …
// over an element type T, one term per Next call.
//
// A generator holds the pair (current, next) and advances the recurrence on
// each pull; for a given element type and policy the emitted sequence is
// exactly reproducible. Generators are plain values with no concurrency
// contract: a caller wanting parallel generation constructs one independent
// generator per goroutine.
type Generator[T any] struct {
	arith     Arithmetic[T]
	policy    Policy
	current   T
	next      T
	exhausted bool
}

// NewGenerator creates a generator seeded at (current=0, next=1) using the
// given capability set and overflow policy.
func NewGenerator[T any](arith Arithmetic[T], policy Policy) *Generator[T] {
	return &Generator[T]{
		arith:   arith,
		policy:  policy,
		current: arith.Zero(),
		next:    arith.One(),
	}
}

// New creates a generator over a fixed-width unsigned builtin type.
func New[T constraints.Unsigned](policy Policy) *Generator[T] {
	return NewGenerator[T](UintArithmetic[T]{}, policy)
}

// NewBig creates a generator over *big.Int. It never exhausts under either
// policy and its terms grow without bound.
func NewBig(policy Policy) *Generator[*big.Int] {
	return NewGenerator[*big.Int](BigArithmetic{}, policy)
}

// NewUint128 creates a generator over the 128-bit element type.
func NewUint128(policy Policy) *Generator[Uint128] {
	return NewGenerator[Uint128](Uint128Arithmetic{}, policy)
}

// Policy returns the overflow policy the generator was constructed with.
func (g *Generator[T]) Policy() Policy { return g.policy }

// Next emits the next term of the sequence. The second return value is false
// once the sequence is exhausted.
//
// Under the Checked policy the generator computes the sum one step ahead of
// the emitted term; the pull on which that lookahead overflows reports
// exhaustion, and every later pull does too (the recurrence can never
// un-overflow). Under the Wrapping policy Next always succeeds.
func (g *Generator[T]) Next() (T, bool) {
	if g.policy == Checked {
		return g.nextChecked()
	}

	out := g.current
	g.current, g.next = g.next, g.arith.WrappingAdd(g.current, g.next)
	return out, true
}

func (g *Generator[T]) nextChecked() (T, bool) {
	var zero T
	if g.exhausted {
		return zero, false
	}

	candidate, ok := g.arith.CheckedAdd(g.current, g.next)
	if !ok {
		g.exhausted = true
		g.current, g.next = zero, zero
		return zero, false
	}

	out := g.current
	g.current, g.next = g.next, candidate
	return out, true
}

// Values returns the sequence as a range-over-func iterator. The iteration
// ends on exhaustion under the Checked policy and is infinite otherwise, so
// wrapping-policy callers must break out themselves.
func (g *Generator[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
