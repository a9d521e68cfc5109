package indexed

import (
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-indexedmap/optional"
)

// LoggingOption configures NewLogging.
type LoggingOption func(*loggingOptions)

type loggingOptions struct {
	logger *slog.Logger
	name   string
}

// WithLogger directs the decorator's output to the given logger instead of
// slog.Default().
func WithLogger(logger *slog.Logger) LoggingOption {
	return func(o *loggingOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogName sets the map name attached to every log record. Useful when
// several logged maps share one logger. Defaults to "indexedmap".
func WithLogName(name string) LoggingOption {
	return func(o *loggingOptions) {
		o.name = name
	}
}

// NewLogging wraps a Map so that Set, Get, At, Remove, and Clear emit a
// debug-level slog record with the operation, the key or index, the outcome,
// and the resulting size. Read-only bulk operations (iteration, Size,
// Contains) stay silent; they would dominate the log without saying much.
// Semantics are never altered, and when the debug level is disabled the
// wrapper is close to free.
//
//	m := indexed.NewLogging(
//	    indexed.New[string, int](ordering.NewSequence[string]()),
//	    indexed.WithLogName("session-cache"),
//	)
func NewLogging[K comparable, V any](m Map[K, V], opts ...LoggingOption) Map[K, V] { //nolint:ireturn
	if m == nil {
		return nil
	}

	options := loggingOptions{
		logger: slog.Default(),
		name:   "indexedmap",
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &loggingMap[K, V]{
		internal: m,
		logger:   options.logger.With("map", options.name),
	}
}

// loggingMap decorates a Map with per-operation debug logging.
type loggingMap[K comparable, V any] struct {
	internal Map[K, V]
	logger   *slog.Logger
}

var _ Map[string, int] = (*loggingMap[string, int])(nil)

func (l *loggingMap[K, V]) Set(key K, value V) {
	l.internal.Set(key, value)
	l.logger.Debug("set", slog.Any("key", key), slog.Int("size", l.internal.Size()))
}

func (l *loggingMap[K, V]) Get(key K) (V, bool) {
	value, found := l.internal.Get(key)
	l.logger.Debug("get", slog.Any("key", key), slog.Bool("found", found))

	return value, found
}

func (l *loggingMap[K, V]) GetOrElse(key K, defaultValue V) V {
	return l.internal.GetOrElse(key, defaultValue)
}

func (l *loggingMap[K, V]) At(index int) (V, bool) {
	value, found := l.internal.At(index)
	l.logger.Debug("at", slog.Int("index", index), slog.Bool("found", found))

	return value, found
}

func (l *loggingMap[K, V]) KeyAt(index int) optional.Value[K] {
	return l.internal.KeyAt(index)
}

func (l *loggingMap[K, V]) IndexOf(key K) optional.Value[int] {
	return l.internal.IndexOf(key)
}

func (l *loggingMap[K, V]) Remove(key K) optional.Value[Entry[V]] {
	entry := l.internal.Remove(key)
	l.logger.Debug("remove",
		slog.Any("key", key),
		slog.Bool("removed", entry.NonEmpty()),
		slog.Int("size", l.internal.Size()))

	return entry
}

func (l *loggingMap[K, V]) Contains(key K) bool {
	return l.internal.Contains(key)
}

func (l *loggingMap[K, V]) Size() int {
	return l.internal.Size()
}

func (l *loggingMap[K, V]) Clear() {
	size := l.internal.Size()
	l.internal.Clear()
	l.logger.Debug("clear", slog.Int("dropped", size))
}

func (l *loggingMap[K, V]) Keys() iter.Seq[K] {
	return l.internal.Keys()
}

func (l *loggingMap[K, V]) Values() iter.Seq[V] {
	return l.internal.Values()
}

func (l *loggingMap[K, V]) Seq() iter.Seq2[K, V] {
	return l.internal.Seq()
}

func (l *loggingMap[K, V]) ForEach(fn func(key K, value V) bool) {
	l.internal.ForEach(fn)
}

// Clone returns a copy that logs to the same logger.
func (l *loggingMap[K, V]) Clone() Map[K, V] { //nolint:ireturn
	return &loggingMap[K, V]{
		internal: l.internal.Clone(),
		logger:   l.logger,
	}
}
