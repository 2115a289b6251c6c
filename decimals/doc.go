// Package decimals collects exact decimal arithmetic recipes built on
// github.com/govalues/decimal.
//
// A float64 stores 0.1 as the nearest binary fraction, which is why
// 0.1+0.2 prints as 0.30000000000000004. A decimal stores the digits that
// were typed:
//
//	a := decimals.MustParse("0.1")
//	b := decimals.MustParse("0.2")
//	sum, _ := a.Add(b) // exactly 0.3
//
// Exactness is not free: decimal arithmetic is slower than native floats
// and fails loudly on overflow instead of degrading to infinity. Reach for
// it when the values are money or anything else where the typed digits are
// the truth, and stay with float64 for scientific work.
//
// # Contexts
//
// Division cannot stay exact (1/3 has no finite decimal form), so results
// must be rounded somewhere. Context bundles a result scale and a rounding
// mode the way a per-block arithmetic context would, keeping the choice in
// one place instead of scattered over every call site:
//
//	ctx := decimals.Context{Scale: 4, Mode: decimals.HalfEven}
//	q, err := ctx.Div(one, three) // 0.3333
//
// Only the returned value is rounded; intermediates are exact.
package decimals
