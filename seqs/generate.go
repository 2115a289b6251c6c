package seqs

import "iter"

// Countdown is the iterator protocol implemented by hand: a stateful
// value whose Next method produces n, n-1, ... 1 and then signals
// exhaustion with ok == false.
type Countdown struct {
	n int
}

// NewCountdown returns a countdown starting at n.
func NewCountdown(n int) *Countdown {
	return &Countdown{n: n}
}

// Next returns the next value, or ok == false once the countdown is
// spent. A spent countdown stays spent.
func (c *Countdown) Next() (v int, ok bool) {
	if c.n <= 0 {
		return 0, false
	}
	v = c.n
	c.n--
	return v, true
}

// All adapts the remaining countdown to the push form, consuming it.
func (c *Countdown) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Count generates start, start+step, start+step*2, ... without end.
// Bound it with Take or break out of the loop; ranging to completion
// never returns.
func Count(start, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := start; ; v += step {
			if !yield(v) {
				return
			}
		}
	}
}

// Frange generates start, start+step, ... up to but excluding stop.
// Each value is computed as start+step*i rather than by accumulation,
// so rounding error does not drift with the index.
// A zero step yields nothing.
func Frange(start, stop, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if step == 0 {
			return
		}
		for i := 0; ; i++ {
			v := start + step*float64(i)
			if (step > 0 && v >= stop) || (step < 0 && v <= stop) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
