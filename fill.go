package fibext

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// FillSequence writes len(dst) consecutive Fibonacci terms into dst, starting
// at F(0), using a fresh generator over the given capability set.
//
// The caller is expected to choose a length that the element type can
// represent. If overflow occurs first, the already-written prefix is kept,
// the rest of dst is left untouched, and an error wrapping ErrOverflow is
// returned naming the index that could not be produced.
func FillSequence[T any](arith Arithmetic[T], dst []T) error {
	gen := NewGenerator(arith, Checked)
	for i := range dst {
		v, ok := gen.Next()
		if !ok {
			return fmt.Errorf("filling term %d of %d: %w", i, len(dst), ErrOverflow)
		}
		dst[i] = v
	}
	return nil
}

// Fill is FillSequence over a fixed-width unsigned builtin type.
func Fill[T constraints.Unsigned](dst []T) error {
	return FillSequence[T](UintArithmetic[T]{}, dst)
}
