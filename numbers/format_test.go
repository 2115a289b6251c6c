package numbers_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/on-the-ground/recipes_go/numbers"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFixed(t *testing.T) {
	assert.Equal(t, "1234.57", numbers.Fixed(1234.56789, 2))
	assert.Equal(t, "1234.6", numbers.Fixed(1234.56789, 1))
	assert.Equal(t, "-1234.568", numbers.Fixed(-1234.56789, 3))
}

func TestScientific(t *testing.T) {
	assert.Equal(t, "1.23e+03", numbers.Scientific(1234.56789, 2))
	assert.Equal(t, "1.235e-02", numbers.Scientific(0.01234567, 3))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.3%", numbers.Percent(0.1234, 1))
	assert.Equal(t, "100%", numbers.Percent(1, 0))
}

func TestGrouped(t *testing.T) {
	assert.Equal(t, "1,234,567", numbers.Grouped(1234567, language.English))
	assert.Equal(t, "-1,234,567", numbers.Grouped(-1234567, language.English))
}

func TestGroupedFloat(t *testing.T) {
	assert.Equal(t, "1,234,567.89", numbers.GroupedFloat(1234567.891, 2, language.English))
}

func TestHumanized(t *testing.T) {
	assert.Equal(t, "1,234,567", numbers.Comma(1234567))
	assert.Equal(t, "1st", numbers.Ordinal(1))
	assert.Equal(t, "22nd", numbers.Ordinal(22))
	assert.Equal(t, "13th", numbers.Ordinal(13))
	assert.Equal(t, "500 B", numbers.ByteSize(500))
	assert.Equal(t, "1.0 MB", numbers.ByteSize(1000000))
}

func TestBases(t *testing.T) {
	assert.Equal(t, "1010", numbers.ToBase(10, 2))
	assert.Equal(t, "ff", numbers.ToBase(255, 16))
	assert.Equal(t, "-ff", numbers.ToBase(-255, 16))

	n, err := numbers.FromBase("4d2", 16)
	assert.NoError(t, err)
	assert.Equal(t, int64(1234), n)

	_, err = numbers.FromBase("zz", 10)
	assert.Error(t, err)

	// One past math.MaxInt64.
	_, err = numbers.FromBase("9223372036854775808", 10)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func ExampleFixed() {
	x := 1234.56789
	fmt.Println(numbers.Fixed(x, 2))
	fmt.Println(numbers.Fixed(x, 1))
	fmt.Println(numbers.Scientific(x, 2))
	// Output:
	// 1234.57
	// 1234.6
	// 1.23e+03
}

func ExampleGrouped() {
	fmt.Println(numbers.Grouped(1234567, language.English))
	fmt.Println(numbers.Comma(1234567))
	// Output:
	// 1,234,567
	// 1,234,567
}
