package unpack_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/recipes_go/unpack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwo(t *testing.T) {
	x, y, err := unpack.Two([]int{4, 5})
	require.NoError(t, err)
	assert.Equal(t, 4, x)
	assert.Equal(t, 5, y)
}

func TestThree(t *testing.T) {
	name, shares, price, err := unpack.Three([]string{"ACME", "50", "91.10"})
	require.NoError(t, err)
	assert.Equal(t, "ACME", name)
	assert.Equal(t, "50", shares)
	assert.Equal(t, "91.10", price)
}

func TestFour(t *testing.T) {
	a, b, c, d, err := unpack.Four([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{a, b, c, d})
}

func TestArityMismatch(t *testing.T) {
	_, _, _, err := unpack.Three([]int{1, 2})
	assert.ErrorIs(t, err, unpack.ErrTooFewValues)

	_, _, err = unpack.Two([]int{1, 2, 3})
	assert.ErrorIs(t, err, unpack.ErrTooManyValues)
}

func TestHead(t *testing.T) {
	first, rest, err := unpack.Head([]int{1, 10, 7, 4, 5, 9})
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, []int{10, 7, 4, 5, 9}, rest)

	_, _, err = unpack.Head([]int{})
	assert.ErrorIs(t, err, unpack.ErrTooFewValues)
}

func TestLast(t *testing.T) {
	trailing, current, err := unpack.Last([]float64{10, 8, 7, 1, 9, 5, 10, 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, current)
	assert.Len(t, trailing, 7)
}

func TestAt(t *testing.T) {
	record := []string{"ACME", "50", "123.45", "2012-12-21"}

	picked, err := unpack.At(record, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACME", "2012-12-21"}, picked)

	_, err = unpack.At(record, 9)
	assert.Error(t, err)
}

func ExampleThree() {
	record := []string{"ACME", "50", "91.10"}
	name, shares, price, err := unpack.Three(record)
	fmt.Println(name, shares, price, err)

	_, _, _, err = unpack.Three(record[:2])
	fmt.Println(err)
	// Output:
	// ACME 50 91.10 <nil>
	// too few values to unpack: expected 3, got 2
}

func ExampleHead() {
	grades := []int{1, 10, 7, 4, 5, 9}
	first, rest, _ := unpack.Head(grades)
	fmt.Println(first)
	fmt.Println(rest)
	// Output:
	// 1
	// [10 7 4 5 9]
}
