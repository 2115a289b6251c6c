package seqs

import (
	"container/heap"
	"iter"
)

// Merge lazily interleaves sequences that are each already sorted under
// cmp into one sorted sequence. Only one pending value per input is held
// at a time, so merging huge sorted files costs the same memory as
// merging small ones. Inputs that are not sorted produce garbage, not an
// error; sortedness is the caller's contract.
func Merge[T any](cmp func(a, b T) int, sequences ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		h := &mergeHeap[T]{cmp: cmp}
		for _, seq := range sequences {
			next, stop := iter.Pull(seq)
			defer stop()
			if v, ok := next(); ok {
				h.entries = append(h.entries, mergeEntry[T]{value: v, next: next})
			}
		}
		heap.Init(h)

		for h.Len() > 0 {
			top := h.entries[0]
			if !yield(top.value) {
				return
			}
			if v, ok := top.next(); ok {
				h.entries[0].value = v
				heap.Fix(h, 0)
			} else {
				heap.Pop(h)
			}
		}
	}
}

type mergeEntry[T any] struct {
	value T
	next  func() (T, bool)
}

// mergeHeap orders pending heads so the smallest under cmp is at the
// root, the same eviction-order trick as an ordered bounded buffer but
// with one slot per source.
type mergeHeap[T any] struct {
	entries []mergeEntry[T]
	cmp     func(a, b T) int
}

func (h *mergeHeap[T]) Len() int { return len(h.entries) }

func (h *mergeHeap[T]) Less(i, j int) bool {
	return h.cmp(h.entries[i].value, h.entries[j].value) < 0
}

func (h *mergeHeap[T]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *mergeHeap[T]) Push(x any) {
	h.entries = append(h.entries, x.(mergeEntry[T]))
}

func (h *mergeHeap[T]) Pop() any {
	last := len(h.entries) - 1
	e := h.entries[last]
	h.entries = h.entries[:last]
	return e
}
