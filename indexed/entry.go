package indexed

import (
	"fmt"

	"github.com/amp-labs/amp-indexedmap/optional"
)

// Entry is what Remove hands back: the payload that was stored, plus the
// position the key occupied at the moment of removal. Position is None when
// the map's ordering backend has no stable positions (a priority heap, say).
//
// A position is a snapshot, not a handle. For insertion-ordered maps the
// removal itself shifts every later key down a slot, so the position is
// already historical by the time the caller sees it.
type Entry[V any] struct {
	Position optional.Value[int] `json:"position"`
	Value    V                   `json:"value"`
}

// String renders the entry for logs and test failures.
func (e Entry[V]) String() string {
	return fmt.Sprintf("Entry(%s, %v)", e.Position, e.Value)
}
