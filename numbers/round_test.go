package numbers_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/on-the-ground/recipes_go/numbers"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.2, numbers.RoundTo(1.23, 1))
	assert.Equal(t, 1.3, numbers.RoundTo(1.27, 1))
	assert.Equal(t, -1.3, numbers.RoundTo(-1.27, 1))
	assert.Equal(t, 1.254, numbers.RoundTo(1.25361, 3))
}

func TestRoundToTiesGoToEven(t *testing.T) {
	assert.Equal(t, 0.0, numbers.RoundTo(0.5, 0))
	assert.Equal(t, 2.0, numbers.RoundTo(1.5, 0))
	assert.Equal(t, 2.0, numbers.RoundTo(2.5, 0))
}

func TestRoundToNegativeDigits(t *testing.T) {
	assert.Equal(t, 1627730.0, numbers.RoundTo(1627731, -1))
	assert.Equal(t, 1627700.0, numbers.RoundTo(1627731, -2))
	assert.Equal(t, 1628000.0, numbers.RoundTo(1627731, -3))
}

func TestRoundToBinaryRepresentationQuirk(t *testing.T) {
	// The float64 written 2.675 is really 2.67499999999999982...,
	// so there is no tie to break.
	assert.Equal(t, 2.67, numbers.RoundTo(2.675, 2))
}

func TestRoundToNonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(numbers.RoundTo(math.NaN(), 2)))
	assert.True(t, math.IsInf(numbers.RoundTo(math.Inf(1), 2), 1))
	assert.True(t, math.IsInf(numbers.RoundTo(math.Inf(-1), 2), -1))
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 1.0, numbers.RoundHalfAwayFromZero(0.5, 0))
	assert.Equal(t, -1.0, numbers.RoundHalfAwayFromZero(-0.5, 0))
	assert.Equal(t, 3.0, numbers.RoundHalfAwayFromZero(2.5, 0))
}

func TestDirectedRounding(t *testing.T) {
	assert.Equal(t, 1.2, numbers.TruncTo(1.27, 1))
	assert.Equal(t, -1.2, numbers.TruncTo(-1.27, 1))
	assert.Equal(t, 3.0, numbers.CeilTo(2.001, 0))
	assert.Equal(t, -3.0, numbers.FloorTo(-2.001, 0))
}

func TestAlmostEqual(t *testing.T) {
	sum := 0.1 + 0.2
	assert.False(t, sum == 0.3)
	assert.True(t, numbers.AlmostEqual(sum, 0.3, 1e-9))
	assert.False(t, numbers.AlmostEqual(sum, 0.31, 1e-9))
}

func ExampleRoundTo() {
	fmt.Println(numbers.RoundTo(1.23, 1))
	fmt.Println(numbers.RoundTo(1.27, 1))
	fmt.Println(numbers.RoundTo(2.675, 2)) // no tie: 2.675 is stored below 2.675
	fmt.Println(numbers.RoundTo(1627731, -1))
	// Output:
	// 1.2
	// 1.3
	// 2.67
	// 1.62773e+06
}

func ExampleAlmostEqual() {
	fmt.Println(0.1 + 0.2)
	fmt.Println(0.1+0.2 == 0.3)
	fmt.Println(numbers.AlmostEqual(0.1+0.2, 0.3, 1e-9))
	// Output:
	// 0.30000000000000004
	// false
	// true
}
