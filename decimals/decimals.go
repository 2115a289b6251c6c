package decimals

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Decimal is the arbitrary-precision decimal type used throughout this
// chapter.
type Decimal = decimal.Decimal

// Parse reads a decimal from its textual form, preserving the typed
// digits exactly, trailing zeros included: "0.10" keeps scale 2.
func Parse(s string) (Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

// MustParse is Parse for literals in examples and tests.
func MustParse(s string) Decimal {
	return decimal.MustParse(s)
}

// New builds a decimal from an integer coefficient and a scale, so
// New(150, 2) is 1.50. This is the lossless way to lift integer cents
// into decimal money.
func New(coef int64, scale int) (Decimal, error) {
	d, err := decimal.New(coef, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("new decimal %d/10^%d: %w", coef, scale, err)
	}
	return d, nil
}

// Sum adds the given decimals exactly. The arity forces at least one
// value, so there is no zero-value ambiguity about the result's scale.
func Sum(first Decimal, rest ...Decimal) (Decimal, error) {
	total := first
	for _, d := range rest {
		var err error
		total, err = total.Add(d)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("sum decimals: %w", err)
		}
	}
	return total, nil
}

// Equal reports whether a and b are numerically equal, ignoring scale:
// 1.5 equals 1.50.
func Equal(a, b Decimal) bool {
	return a.Cmp(b) == 0
}
