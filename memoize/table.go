package memoize

import (
	"fmt"
	"sync"
)

// keyOf reduces an argument to a map key: fmt.Stringer implementations
// are keyed by their string form, everything else by its own value. A
// non-comparable value without a Stringer panics on map insertion,
// which is the intended failure mode.
func keyOf(v any) any {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}

// table is a bounded two-generation cache. Stores go to the hot
// generation; when it reaches max entries it is demoted to cold,
// dropping the previous cold generation wholesale. Lookups consult both.
type table[O any] struct {
	mu   sync.Mutex
	hot  map[any]O
	cold map[any]O
	max  int
}

func newTable[O any](maxEntries int) *table[O] {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &table[O]{
		hot: make(map[any]O, maxEntries),
		max: maxEntries,
	}
}

func (t *table[O]) load(key any) (O, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.hot[key]; ok {
		return v, true
	}
	if v, ok := t.cold[key]; ok {
		// Promote, so the working set survives the next rotation.
		t.hot[key] = v
		t.rotateIfFull()
		return v, true
	}
	var zero O
	return zero, false
}

func (t *table[O]) store(key any, v O) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.hot[key] = v
	t.rotateIfFull()
}

// rotateIfFull must be called with mu held.
func (t *table[O]) rotateIfFull() {
	if len(t.hot) < t.max {
		return
	}
	t.cold = t.hot
	t.hot = make(map[any]O, t.max)
}
