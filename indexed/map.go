// Package indexed provides an associative container that pairs a key-value
// lookup table with a pluggable ordering backend.
//
// A Map answers key lookups from a native Go map in O(1) while a backend
// from the ordering package decides what order Keys, Values, and Seq visit
// entries in, and whether entries can be addressed by position (At). The two
// structures always track exactly the same key set; every mutation goes
// through the Map, which updates both in lockstep.
//
//	m := indexed.New[string, int](ordering.NewSequence[string]())
//	m.Set("a", 1)
//	m.Set("b", 2)
//	m.At(0) // 1, true
//
// Decorators wrap a Map with locking (NewThreadSafe), operation logging
// (NewLogging), and Prometheus metrics (NewInstrumented) without changing
// semantics. MarshalJSON and friends move string-keyed maps in and out of
// wire documents in order.
package indexed

import (
	"iter"
	"maps"

	"github.com/amp-labs/amp-indexedmap/optional"
	"github.com/amp-labs/amp-indexedmap/ordering"
	"github.com/amp-labs/amp-indexedmap/zero"
)

// Map is an associative container with a defined key visiting order. All
// operations are total: absence comes back as a false ok or an empty
// optional, never an error. A Map is not safe for concurrent use unless
// wrapped by NewThreadSafe.
type Map[K comparable, V any] interface {
	// Set upserts. An existing key keeps its position in the ordering and
	// only the payload is replaced; a new key is appended to the lookup
	// table and handed to the ordering backend.
	Set(key K, value V)

	// Get returns the payload for a key. A pure lookup-table read; the
	// ordering backend is never consulted.
	Get(key K) (V, bool)

	// GetOrElse returns the payload for a key, or the given default if the
	// key is absent.
	GetOrElse(key K, defaultValue V) V

	// At returns the payload at a position in the ordering. Misses when the
	// index is out of range or the backend has no positions at all.
	At(index int) (V, bool)

	// KeyAt returns the key at a position in the ordering, None when
	// unresolvable.
	KeyAt(index int) optional.Value[K]

	// IndexOf returns the position of a key, None when the key is absent
	// or the backend has no positions. Positions are invalidated by any
	// removal before them; re-query rather than caching across mutations.
	IndexOf(key K) optional.Value[int]

	// Remove deletes a key from the map and its ordering. Returns the
	// removed payload together with the position the key held just before
	// removal, or None if the key was not present.
	Remove(key K) optional.Value[Entry[V]]

	// Contains reports whether the key is present.
	Contains(key K) bool

	// Size returns the number of entries.
	Size() int

	// Clear removes all entries.
	Clear()

	// Keys yields keys in the ordering backend's order.
	Keys() iter.Seq[K]

	// Values yields payloads in the ordering backend's order.
	Values() iter.Seq[V]

	// Seq yields key-payload pairs in the ordering backend's order.
	Seq() iter.Seq2[K, V]

	// ForEach calls fn for each entry in order until fn returns false.
	ForEach(fn func(key K, value V) bool)

	// Clone returns an independent copy, ordering included.
	Clone() Map[K, V]
}

// indexedMap is the plain single-owner implementation.
type indexedMap[K comparable, V any] struct {
	order  ordering.Ordering[K]
	values map[K]V
}

// New returns an empty Map whose iteration order is governed by the given
// backend. The backend must be dedicated to this map; sharing one across
// maps breaks the key-set invariant both maps rely on. A nil backend yields
// a nil Map.
//
//	indexed.New[string, int](ordering.NewSequence[string]())     // insertion order
//	indexed.New[sortable.Int, bool](ordering.NewMinHeap[sortable.Int]()) // priority order
//	indexed.New[string, int](ordering.NewNaturalSort())          // natural sort order
func New[K comparable, V any](order ordering.Ordering[K]) Map[K, V] { //nolint:ireturn
	if order == nil {
		return nil
	}

	return &indexedMap[K, V]{
		order:  order,
		values: make(map[K]V),
	}
}

var _ Map[string, int] = (*indexedMap[string, int])(nil)

func (m *indexedMap[K, V]) Set(key K, value V) {
	// Membership is decided here, not in the backend, so the key-set
	// invariant holds even over a backend that mishandles duplicates.
	if _, ok := m.values[key]; ok {
		m.values[key] = value

		return
	}

	m.values[key] = value
	m.order.Add(key)
}

func (m *indexedMap[K, V]) Get(key K) (V, bool) {
	value, ok := m.values[key]
	if !ok {
		return zero.Value[V](), false
	}

	return value, true
}

func (m *indexedMap[K, V]) GetOrElse(key K, defaultValue V) V {
	if value, ok := m.values[key]; ok {
		return value
	}

	return defaultValue
}

func (m *indexedMap[K, V]) At(index int) (V, bool) {
	key, ok := m.order.KeyAt(index).Get()
	if !ok {
		return zero.Value[V](), false
	}

	value, ok := m.values[key]

	return value, ok
}

func (m *indexedMap[K, V]) KeyAt(index int) optional.Value[K] {
	return m.order.KeyAt(index)
}

func (m *indexedMap[K, V]) IndexOf(key K) optional.Value[int] {
	return m.order.IndexOf(key)
}

func (m *indexedMap[K, V]) Remove(key K) optional.Value[Entry[V]] {
	value, ok := m.values[key]
	if !ok {
		return optional.None[Entry[V]]()
	}

	// Capture the position before the backend reshuffles it away.
	position := m.order.IndexOf(key)

	delete(m.values, key)
	m.order.Remove(key)

	return optional.Some(Entry[V]{
		Position: position,
		Value:    value,
	})
}

func (m *indexedMap[K, V]) Contains(key K) bool {
	_, ok := m.values[key]

	return ok
}

func (m *indexedMap[K, V]) Size() int {
	return len(m.values)
}

func (m *indexedMap[K, V]) Clear() {
	m.values = make(map[K]V)
	m.order.Clear()
}

func (m *indexedMap[K, V]) Keys() iter.Seq[K] {
	return m.order.Seq()
}

func (m *indexedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for key := range m.order.Seq() {
			if !yield(m.values[key]) {
				return
			}
		}
	}
}

func (m *indexedMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key := range m.order.Seq() {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

func (m *indexedMap[K, V]) ForEach(fn func(key K, value V) bool) {
	for key, value := range m.Seq() {
		if !fn(key, value) {
			return
		}
	}
}

func (m *indexedMap[K, V]) Clone() Map[K, V] { //nolint:ireturn
	clone := &indexedMap[K, V]{
		order:  m.order.Clone(),
		values: make(map[K]V, len(m.values)),
	}
	maps.Copy(clone.values, m.values)

	return clone
}
