// Package ordering defines the pluggable key-ordering capability behind an
// indexed map, along with the backends shipped with this module.
//
// An Ordering tracks which keys exist and in what order they should be
// visited; it never holds payloads. The indexed container pairs one Ordering
// with a lookup table and keeps the two key sets identical. Backends differ
// in what order means (insertion order, priority order, natural sort order)
// and in whether that order supports stable positional addressing.
package ordering

import (
	"iter"

	"github.com/amp-labs/amp-indexedmap/optional"
)

// Ordering is the contract an ordering backend satisfies. Implementations
// are not safe for concurrent use; the container owning the backend decides
// the synchronization story.
//
// Positional methods (IndexOf, KeyAt) are honest about capability: backends
// whose internal arrangement is not a stable, addressable order return None
// from both rather than exposing an implementation artifact.
type Ordering[K comparable] interface {
	// Add records a key as present. Adding a key that is already tracked
	// is a no-op. Returns true if the key was new.
	Add(key K) bool

	// Remove forgets a key. Returns true if a removal occurred; removing
	// an absent key is a no-op returning false, never an error.
	Remove(key K) bool

	// Contains reports whether the key is tracked.
	Contains(key K) bool

	// Size returns the number of tracked keys.
	Size() int

	// IndexOf resolves a key to its position, for backends with stable
	// positions. Returns None if the key is absent or the backend does not
	// support positions.
	IndexOf(key K) optional.Value[int]

	// KeyAt resolves a position to its key. Returns None if the index is
	// out of range or the backend does not support positions.
	KeyAt(index int) optional.Value[K]

	// Seq yields every tracked key in the backend's defined order. The
	// sequence is finite and restartable: ranging over it again starts from
	// the beginning.
	Seq() iter.Seq[K]

	// Clear forgets all keys.
	Clear()

	// Clone returns an independent copy sharing no state with the
	// original.
	Clone() Ordering[K]
}
