package sortable

import (
	"github.com/amp-labs/amp-indexedmap/compare"
)

// Sortable is the capability a type needs to participate in ordered
// collections: equality from [compare.Comparable] plus a strict weak
// ordering via LessThan.
type Sortable[T any] interface {
	compare.Comparable[T]

	// LessThan returns true if this value sorts strictly before the other.
	LessThan(other T) bool
}
