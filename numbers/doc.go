// Package numbers collects rounding and numeric formatting recipes.
//
// Binary floating point cannot represent most decimal fractions exactly,
// and every recipe here exists because of that single fact.
//
// # Rounding
//
// RoundTo rounds half-to-even, the same tie-breaking rule the standard
// library's formatting routines use. The results can look surprising when
// the stored binary value is slightly below the printed decimal one:
//
//	numbers.RoundTo(2.675, 2) // 2.67, not 2.68
//
// That is not a bug in the rounding, it is the value 2.675 actually held
// by the float64. Use the decimals package when the typed digits must be
// preserved. RoundHalfAwayFromZero, TruncTo, CeilTo and FloorTo cover the
// other rounding directions. Negative digit counts round to tens,
// hundreds, and so on.
//
// # Comparing
//
// Never compare computed floats with ==. AlmostEqual is the tolerance
// comparison recipe:
//
//	0.1+0.2 == 0.3                        // false
//	numbers.AlmostEqual(0.1+0.2, 0.3, 1e-9) // true
//
// # Formatting
//
// Rounding a value and formatting a value are different operations: if the
// goal is output, format instead of rounding first. Fixed and Scientific
// wrap strconv, Grouped adds locale-aware thousands separators via
// golang.org/x/text, and Comma, Ordinal and ByteSize delegate to
// go-humanize for human-facing renderings.
//
// # Bases
//
// ToBase and FromBase are thin strconv recipes for binary, octal and
// hexadecimal integer text.
package numbers
