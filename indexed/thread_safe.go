package indexed

import (
	"iter"
	"sync"

	"github.com/amp-labs/amp-indexedmap/optional"
)

// NewThreadSafe wraps a Map with sync.RWMutex coordination so it can be
// shared across goroutines. Mutations (Set, Remove, Clear) take the
// exclusive lock; reads take the shared lock. Iteration snapshots the map
// under the read lock and then yields with no lock held, so the view is the
// map as of the Seq/Keys/Values call and later mutations are invisible to
// an iterator already handed out.
//
// The mutex serializes whole operations. A Remove that shifts positions can
// never interleave with an At resolving one, which is the interleaving an
// unwrapped Map cannot survive.
//
// Wrapping an already wrapped Map returns it as-is; a nil Map yields nil.
//
//	m := indexed.NewThreadSafe(indexed.New[string, int](ordering.NewSequence[string]()))
//	m.Set("key", 42) // safe from any goroutine
func NewThreadSafe[K comparable, V any](m Map[K, V]) Map[K, V] { //nolint:ireturn
	if m == nil {
		return nil
	}

	if safe, ok := m.(*threadSafeMap[K, V]); ok {
		// Already thread-safe, no point double-locking.
		return safe
	}

	return &threadSafeMap[K, V]{
		internal: m,
	}
}

// threadSafeMap decorates a Map with a read-write mutex.
type threadSafeMap[K comparable, V any] struct {
	mutex    sync.RWMutex
	internal Map[K, V]
}

var _ Map[string, int] = (*threadSafeMap[string, int])(nil)

// pair is the snapshot element for lock-free iteration.
type pair[K comparable, V any] struct {
	key   K
	value V
}

func (t *threadSafeMap[K, V]) Set(key K, value V) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Set(key, value)
}

func (t *threadSafeMap[K, V]) Get(key K) (V, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Get(key)
}

func (t *threadSafeMap[K, V]) GetOrElse(key K, defaultValue V) V {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.GetOrElse(key, defaultValue)
}

func (t *threadSafeMap[K, V]) At(index int) (V, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.At(index)
}

func (t *threadSafeMap[K, V]) KeyAt(index int) optional.Value[K] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.KeyAt(index)
}

func (t *threadSafeMap[K, V]) IndexOf(key K) optional.Value[int] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.IndexOf(key)
}

func (t *threadSafeMap[K, V]) Remove(key K) optional.Value[Entry[V]] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(key)
}

func (t *threadSafeMap[K, V]) Contains(key K) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(key)
}

func (t *threadSafeMap[K, V]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

func (t *threadSafeMap[K, V]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

// Keys yields the keys from a snapshot taken when Keys is called. The lock
// is released before the first yield.
func (t *threadSafeMap[K, V]) Keys() iter.Seq[K] {
	t.mutex.RLock()

	accum := make([]K, 0, t.internal.Size())
	for key := range t.internal.Keys() {
		accum = append(accum, key)
	}

	t.mutex.RUnlock()

	return func(yield func(K) bool) {
		for _, key := range accum {
			if !yield(key) {
				return
			}
		}
	}
}

// Values yields the payloads from a snapshot taken when Values is called.
func (t *threadSafeMap[K, V]) Values() iter.Seq[V] {
	t.mutex.RLock()

	accum := make([]V, 0, t.internal.Size())
	for value := range t.internal.Values() {
		accum = append(accum, value)
	}

	t.mutex.RUnlock()

	return func(yield func(V) bool) {
		for _, value := range accum {
			if !yield(value) {
				return
			}
		}
	}
}

// Seq yields key-payload pairs from a snapshot taken when Seq is called.
// O(n) memory, but no lock is held while callers consume the sequence, so
// slow consumers and concurrent writers never block each other.
func (t *threadSafeMap[K, V]) Seq() iter.Seq2[K, V] {
	accum := t.snapshot()

	return func(yield func(K, V) bool) {
		for _, entry := range accum {
			if !yield(entry.key, entry.value) {
				return
			}
		}
	}
}

// ForEach runs fn over a snapshot, so fn never executes under the lock and
// may itself call back into the map without deadlocking.
func (t *threadSafeMap[K, V]) ForEach(fn func(key K, value V) bool) {
	for _, entry := range t.snapshot() {
		if !fn(entry.key, entry.value) {
			return
		}
	}
}

// Clone returns an independent copy that is itself thread-safe.
func (t *threadSafeMap[K, V]) Clone() Map[K, V] { //nolint:ireturn
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return NewThreadSafe(t.internal.Clone())
}

func (t *threadSafeMap[K, V]) snapshot() []pair[K, V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	accum := make([]pair[K, V], 0, t.internal.Size())
	for key, value := range t.internal.Seq() {
		accum = append(accum, pair[K, V]{key: key, value: value})
	}

	return accum
}
