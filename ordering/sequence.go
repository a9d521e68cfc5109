package ordering

import (
	"iter"
	"maps"

	"github.com/amp-labs/amp-indexedmap/optional"
)

// sequence keeps keys in insertion order. Positions are dense: the first key
// ever added sits at 0, and removals close the gap they leave.
type sequence[K comparable] struct {
	keys []K
	pos  map[K]int
}

// NewSequence returns an insertion-ordered backend. It is index-capable:
// IndexOf and KeyAt are both O(1), and positions stay dense and contiguous
// across removals. The price is that Remove is O(n), since every key after
// the removed one shifts down a slot. Positions obtained before a Remove are
// stale afterwards; re-query instead of caching them.
func NewSequence[K comparable]() Ordering[K] { //nolint:ireturn
	return &sequence[K]{
		pos: make(map[K]int),
	}
}

var _ Ordering[string] = (*sequence[string])(nil)

func (s *sequence[K]) Add(key K) bool {
	if _, ok := s.pos[key]; ok {
		return false
	}

	s.pos[key] = len(s.keys)
	s.keys = append(s.keys, key)

	return true
}

func (s *sequence[K]) Remove(key K) bool {
	removed, ok := s.pos[key]
	if !ok {
		return false
	}

	s.keys = append(s.keys[:removed], s.keys[removed+1:]...)
	delete(s.pos, key)

	// Close the gap: every key after the removed slot moves down one.
	for i := removed; i < len(s.keys); i++ {
		s.pos[s.keys[i]] = i
	}

	return true
}

func (s *sequence[K]) Contains(key K) bool {
	_, ok := s.pos[key]

	return ok
}

func (s *sequence[K]) Size() int {
	return len(s.keys)
}

func (s *sequence[K]) IndexOf(key K) optional.Value[int] {
	index, ok := s.pos[key]
	if !ok {
		return optional.None[int]()
	}

	return optional.Some(index)
}

func (s *sequence[K]) KeyAt(index int) optional.Value[K] {
	if index < 0 || index >= len(s.keys) {
		return optional.None[K]()
	}

	return optional.Some(s.keys[index])
}

func (s *sequence[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, key := range s.keys {
			if !yield(key) {
				return
			}
		}
	}
}

func (s *sequence[K]) Clear() {
	s.keys = nil
	s.pos = make(map[K]int)
}

func (s *sequence[K]) Clone() Ordering[K] { //nolint:ireturn
	clone := &sequence[K]{
		keys: make([]K, len(s.keys)),
		pos:  make(map[K]int, len(s.pos)),
	}
	copy(clone.keys, s.keys)
	maps.Copy(clone.pos, s.pos)

	return clone
}
