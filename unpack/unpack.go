package unpack

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewValues reports a sequence shorter than the expected shape.
	ErrTooFewValues = errors.New("too few values to unpack")
	// ErrTooManyValues reports a sequence longer than the expected shape.
	ErrTooManyValues = errors.New("too many values to unpack")
)

func checkLen[T any](s []T, want int) error {
	switch {
	case len(s) < want:
		return fmt.Errorf("%w: expected %d, got %d", ErrTooFewValues, want, len(s))
	case len(s) > want:
		return fmt.Errorf("%w: expected %d, got %d", ErrTooManyValues, want, len(s))
	default:
		return nil
	}
}

// Two destructures a slice of exactly two elements.
func Two[T any](s []T) (a, b T, err error) {
	if err = checkLen(s, 2); err != nil {
		return
	}
	return s[0], s[1], nil
}

// Three destructures a slice of exactly three elements.
func Three[T any](s []T) (a, b, c T, err error) {
	if err = checkLen(s, 3); err != nil {
		return
	}
	return s[0], s[1], s[2], nil
}

// Four destructures a slice of exactly four elements.
func Four[T any](s []T) (a, b, c, d T, err error) {
	if err = checkLen(s, 4); err != nil {
		return
	}
	return s[0], s[1], s[2], s[3], nil
}

// Head splits off the first element, returning it with the remainder.
// The remainder aliases s; it is a view, not a copy.
func Head[T any](s []T) (first T, rest []T, err error) {
	if len(s) == 0 {
		err = fmt.Errorf("%w: expected at least 1, got 0", ErrTooFewValues)
		return
	}
	return s[0], s[1:], nil
}

// Last splits off the final element, returning the leading remainder
// with it. The remainder aliases s.
func Last[T any](s []T) (init []T, last T, err error) {
	if len(s) == 0 {
		err = fmt.Errorf("%w: expected at least 1, got 0", ErrTooFewValues)
		return
	}
	return s[:len(s)-1], s[len(s)-1], nil
}

// At picks the elements at the given positions, in the order asked for,
// discarding the rest of the sequence. An out-of-range position fails the
// whole pick.
func At[T any](s []T, positions ...int) ([]T, error) {
	picked := make([]T, 0, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(s) {
			return nil, fmt.Errorf("%w: position %d of %d", ErrTooFewValues, p, len(s))
		}
		picked = append(picked, s[p])
	}
	return picked, nil
}
