package ordering

import (
	"iter"

	"github.com/amp-labs/amp-indexedmap/optional"
	"github.com/amp-labs/amp-indexedmap/sortable"
)

// minHeap keeps keys in a binary min-heap laid out in the usual array form:
// children of items[i] live at items[2i+1] and items[2i+2].
type minHeap[K sortable.Key[K]] struct {
	items []K
}

// NewMinHeap returns a priority-ordered backend over the key type's LessThan.
// It is a min-heap: Seq visits the smallest key first and yields the rest in
// ascending order. The heap is not index-capable; its internal array layout
// is an artifact of the sift operations, so IndexOf and KeyAt always return
// None and positional access through a container backed by this ordering
// always misses.
//
// Remove and Contains scan linearly, since a heap cannot locate an arbitrary
// key any faster. Iteration never disturbs the live structure: Seq drains a
// snapshot copy.
func NewMinHeap[K sortable.Key[K]]() Ordering[K] { //nolint:ireturn
	return &minHeap[K]{}
}

var _ Ordering[sortable.Int] = (*minHeap[sortable.Int])(nil)

func (h *minHeap[K]) Add(key K) bool {
	if h.indexOf(key) >= 0 {
		return false
	}

	h.items = append(h.items, key)
	h.siftUp(len(h.items) - 1)

	return true
}

func (h *minHeap[K]) Remove(key K) bool {
	index := h.indexOf(key)
	if index < 0 {
		return false
	}

	last := len(h.items) - 1
	h.items[index] = h.items[last]
	h.items = h.items[:last]

	// The relocated element may violate heap shape in either direction.
	if index < last {
		h.siftDown(index)
		h.siftUp(index)
	}

	return true
}

func (h *minHeap[K]) Contains(key K) bool {
	return h.indexOf(key) >= 0
}

func (h *minHeap[K]) Size() int {
	return len(h.items)
}

// IndexOf always returns None: heap array slots are not stable positions.
func (h *minHeap[K]) IndexOf(_ K) optional.Value[int] {
	return optional.None[int]()
}

// KeyAt always returns None: heap array slots are not stable positions.
func (h *minHeap[K]) KeyAt(_ int) optional.Value[K] {
	return optional.None[K]()
}

func (h *minHeap[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		snapshot := minHeap[K]{items: make([]K, len(h.items))}
		copy(snapshot.items, h.items)

		for len(snapshot.items) > 0 {
			if !yield(snapshot.popMin()) {
				return
			}
		}
	}
}

func (h *minHeap[K]) Clear() {
	h.items = nil
}

func (h *minHeap[K]) Clone() Ordering[K] { //nolint:ireturn
	clone := &minHeap[K]{
		items: make([]K, len(h.items)),
	}
	copy(clone.items, h.items)

	return clone
}

// indexOf locates a key by Equals scan, -1 if absent.
func (h *minHeap[K]) indexOf(key K) int {
	for i, item := range h.items {
		if item.Equals(key) {
			return i
		}
	}

	return -1
}

// popMin removes and returns the root, restoring heap shape.
func (h *minHeap[K]) popMin() K {
	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	h.siftDown(0)

	return root
}

func (h *minHeap[K]) siftUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !h.items[index].LessThan(h.items[parent]) {
			return
		}

		h.items[index], h.items[parent] = h.items[parent], h.items[index]
		index = parent
	}
}

func (h *minHeap[K]) siftDown(index int) {
	for {
		smallest := index
		left := 2*index + 1
		right := 2*index + 2

		if left < len(h.items) && h.items[left].LessThan(h.items[smallest]) {
			smallest = left
		}

		if right < len(h.items) && h.items[right].LessThan(h.items[smallest]) {
			smallest = right
		}

		if smallest == index {
			return
		}

		h.items[index], h.items[smallest] = h.items[smallest], h.items[index]
		index = smallest
	}
}
