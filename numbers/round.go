package numbers

import "math"

// RoundTo rounds x to the given number of decimal digits, breaking ties
// toward the nearest even digit. A negative digit count rounds to the left
// of the decimal point (tens, hundreds, ...). NaN and infinities are
// returned unchanged.
func RoundTo(x float64, digits int) float64 {
	return scaled(x, digits, math.RoundToEven)
}

// RoundHalfAwayFromZero rounds x to the given number of decimal digits,
// breaking ties away from zero. This is the schoolbook rule most people
// expect before they meet half-to-even.
func RoundHalfAwayFromZero(x float64, digits int) float64 {
	return scaled(x, digits, math.Round)
}

// TruncTo drops digits beyond the given decimal position, rounding toward
// zero.
func TruncTo(x float64, digits int) float64 {
	return scaled(x, digits, math.Trunc)
}

// CeilTo rounds x toward positive infinity at the given decimal position.
func CeilTo(x float64, digits int) float64 {
	return scaled(x, digits, math.Ceil)
}

// FloorTo rounds x toward negative infinity at the given decimal position.
func FloorTo(x float64, digits int) float64 {
	return scaled(x, digits, math.Floor)
}

// AlmostEqual reports whether a and b differ by at most tolerance.
// Computed floats should never be compared with ==; 0.1+0.2 is not 0.3.
func AlmostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// scaled shifts x so that the target digit sits at the unit position,
// applies round, and shifts back. Scaling by division for negative digit
// counts keeps integer inputs exact (1627731 to the nearest ten is
// 1627730, not 1627730.0000000002).
func scaled(x float64, digits int, round func(float64) float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if digits < 0 {
		p := math.Pow(10, float64(-digits))
		return round(x/p) * p
	}
	p := math.Pow(10, float64(digits))
	return round(x*p) / p
}
