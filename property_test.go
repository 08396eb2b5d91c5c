package fibext

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRecurrence_PropertyBased verifies the defining property of the
// sequence, term[n] = term[n-1] + term[n-2], over random prefix lengths for
// both policies. Wrapping arithmetic preserves the recurrence mod 2^64.
func TestRecurrence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, policy := range []Policy{Wrapping, Checked} {
		properties.Property(policy.String()+" terms satisfy the recurrence", prop.ForAll(
			func(n uint16) bool {
				length := int(n%500) + 7
				gen64 := New[uint64](policy)

				terms := make([]uint64, 0, length)
				for i := 0; i < length; i++ {
					v, ok := gen64.Next()
					if !ok {
						break
					}
					terms = append(terms, v)
				}

				if len(terms) < 7 || terms[0] != 0 || terms[1] != 1 {
					return false
				}
				for i := 2; i < len(terms); i++ {
					if terms[i] != terms[i-1]+terms[i-2] {
						return false
					}
				}
				return true
			},
			gen.UInt16(),
		))
	}

	properties.TestingRun(t)
}

// TestWrappingMatchesCheckedUntilExhaustion_PropertyBased verifies that the
// two policies agree term for term until the checked generator exhausts, and
// that past that point the wrapping terms equal the true values mod 2^width.
func TestWrappingMatchesCheckedUntilExhaustion_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("uint16 policies agree, then wrapping reduces mod 2^16", prop.ForAll(
		func(pulls uint16) bool {
			n := int(pulls%300) + 1
			checked := New[uint16](Checked)
			wrapping := New[uint16](Wrapping)
			ref := NewBig(Wrapping)
			mod := big.NewInt(1 << 16)

			for i := 0; i < n; i++ {
				w, ok := wrapping.Next()
				if !ok {
					return false
				}
				r, _ := ref.Next()
				if uint64(w) != new(big.Int).Mod(r, mod).Uint64() {
					return false
				}
				if c, ok := checked.Next(); ok && c != w {
					return false
				}
			}
			return true
		},
		gen.UInt16(),
	))

	properties.TestingRun(t)
}

// TestBigNeverExhausts_PropertyBased pulls deep into the big.Int sequence
// under both policies: exhaustion never occurs, the policies agree exactly,
// and the terms grow without bound.
func TestBigNeverExhausts_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("big terms are policy-independent and unbounded", prop.ForAll(
		func(extra uint16) bool {
			n := 1000 + int(extra%500)
			checked := NewBig(Checked)
			wrapping := NewBig(Wrapping)

			var prev *big.Int
			for i := 0; i < n; i++ {
				c, ok := checked.Next()
				if !ok {
					return false
				}
				w, ok := wrapping.Next()
				if !ok {
					return false
				}
				if c.Cmp(w) != 0 {
					return false
				}
				// Strictly increasing from the second 1 onwards.
				if i > 2 && prev != nil && c.Cmp(prev) <= 0 {
					return false
				}
				prev = c
			}
			// F(1000) has 209 decimal digits; unbounded growth in practice.
			return len(prev.String()) > 200
		},
		gen.UInt16(),
	))

	properties.TestingRun(t)
}
