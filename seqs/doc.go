// Package seqs collects iterator and generator recipes around the
// standard iterator protocol, iter.Seq and iter.Seq2.
//
// # The protocol
//
// An iterator is anything that can produce the next value or signal that
// there is none. The push form is a range-over-func sequence; the pull
// form, obtained with iter.Pull, is an explicit next function whose
// second result going false is the exhaustion signal:
//
//	next, stop := iter.Pull(seqs.Count(0, 1))
//	defer stop()
//	v, ok := next() // 0, true
//
// Countdown shows the protocol implemented by hand on a struct, the way
// a stateful iterator object would.
//
// # Generators
//
// A generator here is just a function returning an iter.Seq whose body
// runs lazily, one yield at a time, suspended between demands. Count and
// Frange produce arithmetic sequences that way; Count is infinite, so
// always bound it with Take or an early break.
//
// # Combinators
//
// Enumerate, Zip, Chain, Take, Drop, Pairwise, Flatten and Distinct are
// the usual sequence algebra. Flatten is delegation: it hands control to
// each inner sequence in turn. For iterating a slice backward, the
// standard library already has slices.Backward; no recipe needed.
//
// Merge lazily interleaves already-sorted sequences into one sorted
// sequence, holding one pending value per input rather than collecting
// and resorting.
//
// # Following a growing file
//
// Follow is the one long-running recipe: it polls a file for appended
// lines, sleeping between attempts, until its context is canceled. It is
// single-use and reports progress through any logger attached with
// shared/logctx.
package seqs
