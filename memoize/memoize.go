package memoize

// Func1 wraps a pure single-argument function with a cache of at most
// maxEntries results per generation.
func Func1[I, O any](pure func(I) O, maxEntries int) func(I) O {
	memo := newTable[O](maxEntries)
	return func(i I) O {
		key := keyOf(i)
		if v, ok := memo.load(key); ok {
			return v
		}
		v := pure(i)
		memo.store(key, v)
		return v
	}
}

// Func2 is Func1 for two arguments.
func Func2[I1, I2, O any](pure func(I1, I2) O, maxEntries int) func(I1, I2) O {
	memo := newTable[O](maxEntries)
	return func(i1 I1, i2 I2) O {
		key := [2]any{keyOf(i1), keyOf(i2)}
		if v, ok := memo.load(key); ok {
			return v
		}
		v := pure(i1, i2)
		memo.store(key, v)
		return v
	}
}

// Func3 is Func1 for three arguments.
func Func3[I1, I2, I3, O any](pure func(I1, I2, I3) O, maxEntries int) func(I1, I2, I3) O {
	memo := newTable[O](maxEntries)
	return func(i1 I1, i2 I2, i3 I3) O {
		key := [3]any{keyOf(i1), keyOf(i2), keyOf(i3)}
		if v, ok := memo.load(key); ok {
			return v
		}
		v := pure(i1, i2, i3)
		memo.store(key, v)
		return v
	}
}

type pair[A, B any] struct {
	a A
	b B
}

// Func1x2 wraps a pure single-argument function returning two values.
func Func1x2[I, O1, O2 any](pure func(I) (O1, O2), maxEntries int) func(I) (O1, O2) {
	memo := newTable[pair[O1, O2]](maxEntries)
	return func(i I) (O1, O2) {
		key := keyOf(i)
		if v, ok := memo.load(key); ok {
			return v.a, v.b
		}
		a, b := pure(i)
		memo.store(key, pair[O1, O2]{a, b})
		return a, b
	}
}

// Func2x2 wraps a pure two-argument function returning two values.
func Func2x2[I1, I2, O1, O2 any](pure func(I1, I2) (O1, O2), maxEntries int) func(I1, I2) (O1, O2) {
	memo := newTable[pair[O1, O2]](maxEntries)
	return func(i1 I1, i2 I2) (O1, O2) {
		key := [2]any{keyOf(i1), keyOf(i2)}
		if v, ok := memo.load(key); ok {
			return v.a, v.b
		}
		a, b := pure(i1, i2)
		memo.store(key, pair[O1, O2]{a, b})
		return a, b
	}
}
