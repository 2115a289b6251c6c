// Package memoize collects the recipe for caching pure functions.
//
// Memoization is only a performance trick on the surface. Wrapping a
// function here is a claim about it:
//
//	→ "Given the same inputs, it always returns the same outputs."
//	→ "It touches nothing outside its arguments."
//
// If either is false — the function reads the clock, a file, a global —
// the cache will happily serve stale answers. Do not memoize impure
// functions.
//
// Func1 through Func3 (and the two-result Func1x2, Func2x2) wrap a pure
// function with a bounded cache keyed by its arguments. Arguments must be
// comparable, or carry a fmt.Stringer to stand in as the key; anything
// else panics at first call, loudly, rather than caching by accident.
//
// The cache is bounded by generation rotation rather than per-entry
// eviction: when the hot generation fills, it becomes the cold one and a
// fresh hot generation starts. A hit in either generation is a hit, so
// the working set survives rotation while memory stays within two
// generations.
package memoize
