package numbers

import (
	"fmt"
	"strconv"
)

// ToBase renders n in the given base (2 through 36) with lowercase digits.
// The sign is kept out of the digit string, so ToBase(-255, 16) is "-ff".
func ToBase(n int64, base int) string {
	return strconv.FormatInt(n, base)
}

// FromBase parses s as an integer written in the given base.
func FromBase(s string, base int) (int64, error) {
	n, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("parse base-%d integer: %w", base, err)
	}
	return n, nil
}
