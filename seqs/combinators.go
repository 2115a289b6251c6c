package seqs

import (
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Enumerate pairs each element with its position, counting from start.
func Enumerate[T any](seq iter.Seq[T], start int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := start
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Zip pairs elements of a and b positionally, stopping with the shorter
// sequence.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextB, stopB := iter.Pull(b)
		defer stopB()
		for av := range a {
			bv, ok := nextB()
			if !ok {
				return
			}
			if !yield(av, bv) {
				return
			}
		}
	}
}

// Chain yields every element of each sequence in turn.
func Chain[T any](sequences ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range sequences {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Take yields at most n leading elements of seq. This is what makes
// infinite generators like Count usable.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		left := n
		for v := range seq {
			if !yield(v) {
				return
			}
			if left--; left == 0 {
				return
			}
		}
	}
}

// Drop skips the first n elements of seq and yields the rest.
func Drop[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Pairwise yields each element with its successor: a b c becomes
// (a,b) (b,c). Sequences shorter than two yield nothing.
func Pairwise[T any](seq iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		var prev T
		first := true
		for v := range seq {
			if first {
				first = false
				prev = v
				continue
			}
			if !yield(prev, v) {
				return
			}
			prev = v
		}
	}
}

// Flatten delegates to each inner sequence in turn, yielding its
// elements as if they were the outer sequence's own.
func Flatten[T any](seq iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range seq {
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Distinct yields each element the first time it appears, in order.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// DistinctStrings is Distinct for string sequences whose elements may be
// large: the seen-set holds 8-byte xxhash digests instead of the strings
// themselves. A hash collision would drop a distinct line; with a 64-bit
// digest that is an accepted trade for bounded memory.
func DistinctStrings(seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[uint64]struct{})
		for s := range seq {
			sum := xxhash.Sum64String(s)
			if _, dup := seen[sum]; dup {
				continue
			}
			seen[sum] = struct{}{}
			if !yield(s) {
				return
			}
		}
	}
}
