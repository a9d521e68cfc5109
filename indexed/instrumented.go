package indexed

import (
	"iter"

	"go.uber.org/atomic"

	"github.com/amp-labs/amp-indexedmap/optional"
)

// Stats is a point-in-time snapshot of the counters kept by an
// instrumented map.
type Stats struct {
	// Sets is the number of Set calls, inserts and updates alike.
	Sets int64

	// Gets is the number of key lookups via Get or GetOrElse.
	Gets int64

	// Hits is the number of lookups that found their key or index.
	Hits int64

	// Misses is the number of lookups that came back empty.
	Misses int64

	// Removes is the number of Remove calls that actually removed an entry.
	Removes int64
}

// Instrumented is a Map that also reports usage counters.
type Instrumented[K comparable, V any] interface {
	Map[K, V]

	// Stats returns a snapshot of the counters accumulated so far.
	Stats() Stats
}

// InstrumentOption configures NewInstrumented.
type InstrumentOption func(*instrumentOptions)

type instrumentOptions struct {
	name string
}

// WithName sets the "name" label on the Prometheus series emitted by the
// instrumented map. Defaults to "indexedmap".
func WithName(name string) InstrumentOption {
	return func(o *instrumentOptions) {
		o.name = name
	}
}

// NewInstrumented wraps a Map with in-process counters and Prometheus
// metrics. Counters are safe for concurrent use, but they only describe a
// concurrently used map faithfully when the wrapped Map is itself
// thread-safe.
//
//	m := indexed.NewInstrumented(
//	    indexed.NewThreadSafe(indexed.New[string, int](ordering.NewSequence[string]())),
//	    indexed.WithName("session-cache"),
//	)
func NewInstrumented[K comparable, V any](m Map[K, V], opts ...InstrumentOption) Instrumented[K, V] { //nolint:ireturn
	if m == nil {
		return nil
	}

	options := instrumentOptions{
		name: "indexedmap",
	}

	for _, opt := range opts {
		opt(&options)
	}

	// Touch every series up front so the map shows up in scrapes before
	// the first operation.
	for _, op := range []string{opSet, opGet, opAt, opRemove, opClear} {
		operationsTotal.WithLabelValues(options.name, op).Add(0)
	}

	lookupsTotal.WithLabelValues(options.name, resultHit).Add(0)
	lookupsTotal.WithLabelValues(options.name, resultMiss).Add(0)
	mapSize.WithLabelValues(options.name).Set(float64(m.Size()))

	return &instrumentedMap[K, V]{
		internal: m,
		name:     options.name,
		sets:     atomic.NewInt64(0),
		gets:     atomic.NewInt64(0),
		hits:     atomic.NewInt64(0),
		misses:   atomic.NewInt64(0),
		removes:  atomic.NewInt64(0),
	}
}

// instrumentedMap decorates a Map with usage counters and Prometheus
// metrics.
type instrumentedMap[K comparable, V any] struct {
	internal Map[K, V]
	name     string

	sets    *atomic.Int64
	gets    *atomic.Int64
	hits    *atomic.Int64
	misses  *atomic.Int64
	removes *atomic.Int64
}

var _ Instrumented[string, int] = (*instrumentedMap[string, int])(nil)

func (i *instrumentedMap[K, V]) Stats() Stats {
	return Stats{
		Sets:    i.sets.Load(),
		Gets:    i.gets.Load(),
		Hits:    i.hits.Load(),
		Misses:  i.misses.Load(),
		Removes: i.removes.Load(),
	}
}

func (i *instrumentedMap[K, V]) recordLookup(found bool) {
	if found {
		i.hits.Inc()
		lookupsTotal.WithLabelValues(i.name, resultHit).Inc()
	} else {
		i.misses.Inc()
		lookupsTotal.WithLabelValues(i.name, resultMiss).Inc()
	}
}

func (i *instrumentedMap[K, V]) recordSize() {
	mapSize.WithLabelValues(i.name).Set(float64(i.internal.Size()))
}

func (i *instrumentedMap[K, V]) Set(key K, value V) {
	i.internal.Set(key, value)
	i.sets.Inc()
	operationsTotal.WithLabelValues(i.name, opSet).Inc()
	i.recordSize()
}

func (i *instrumentedMap[K, V]) Get(key K) (V, bool) {
	value, found := i.internal.Get(key)
	i.gets.Inc()
	operationsTotal.WithLabelValues(i.name, opGet).Inc()
	i.recordLookup(found)

	return value, found
}

func (i *instrumentedMap[K, V]) GetOrElse(key K, defaultValue V) V {
	if value, found := i.Get(key); found {
		return value
	}

	return defaultValue
}

func (i *instrumentedMap[K, V]) At(index int) (V, bool) {
	value, found := i.internal.At(index)
	operationsTotal.WithLabelValues(i.name, opAt).Inc()
	i.recordLookup(found)

	return value, found
}

func (i *instrumentedMap[K, V]) KeyAt(index int) optional.Value[K] {
	return i.internal.KeyAt(index)
}

func (i *instrumentedMap[K, V]) IndexOf(key K) optional.Value[int] {
	return i.internal.IndexOf(key)
}

func (i *instrumentedMap[K, V]) Remove(key K) optional.Value[Entry[V]] {
	entry := i.internal.Remove(key)
	operationsTotal.WithLabelValues(i.name, opRemove).Inc()

	if entry.NonEmpty() {
		i.removes.Inc()
	}

	i.recordSize()

	return entry
}

func (i *instrumentedMap[K, V]) Contains(key K) bool {
	return i.internal.Contains(key)
}

func (i *instrumentedMap[K, V]) Size() int {
	return i.internal.Size()
}

func (i *instrumentedMap[K, V]) Clear() {
	i.internal.Clear()
	operationsTotal.WithLabelValues(i.name, opClear).Inc()
	i.recordSize()
}

func (i *instrumentedMap[K, V]) Keys() iter.Seq[K] {
	return i.internal.Keys()
}

func (i *instrumentedMap[K, V]) Values() iter.Seq[V] {
	return i.internal.Values()
}

func (i *instrumentedMap[K, V]) Seq() iter.Seq2[K, V] {
	return i.internal.Seq()
}

func (i *instrumentedMap[K, V]) ForEach(fn func(key K, value V) bool) {
	i.internal.ForEach(fn)
}

// Clone returns an instrumented copy that reports under the same name with
// fresh counters.
func (i *instrumentedMap[K, V]) Clone() Map[K, V] { //nolint:ireturn
	return NewInstrumented(i.internal.Clone(), WithName(i.name))
}
