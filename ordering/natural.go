package ordering

import (
	"iter"
	"slices"
	"sort"

	"facette.io/natsort"
	"github.com/amp-labs/amp-indexedmap/optional"
)

// naturalSort keeps string keys sorted in natural order, so "item2" precedes
// "item10". The slice is kept sorted by naturalLess on every Add and Remove.
type naturalSort struct {
	keys []string
}

// NewNaturalSort returns a backend that orders string keys the way a human
// sorts numbered names: embedded digit runs compare numerically rather than
// byte-wise. Distinct keys that natural comparison considers equal, such as
// "a1" and "a01", fall back to byte order, so the arrangement does not
// depend on insertion sequence. It is index-capable; IndexOf and KeyAt
// resolve against the sorted arrangement, and positions shift as keys are
// added or removed around them. Add and Remove are O(n) in the worst case
// (binary search plus a slice shift).
func NewNaturalSort() Ordering[string] { //nolint:ireturn
	return &naturalSort{}
}

var _ Ordering[string] = (*naturalSort)(nil)

func (n *naturalSort) Add(key string) bool {
	at, found := n.search(key)
	if found {
		return false
	}

	n.keys = slices.Insert(n.keys, at, key)

	return true
}

func (n *naturalSort) Remove(key string) bool {
	at, found := n.search(key)
	if !found {
		return false
	}

	n.keys = append(n.keys[:at], n.keys[at+1:]...)

	return true
}

func (n *naturalSort) Contains(key string) bool {
	_, found := n.search(key)

	return found
}

func (n *naturalSort) Size() int {
	return len(n.keys)
}

func (n *naturalSort) IndexOf(key string) optional.Value[int] {
	at, found := n.search(key)
	if !found {
		return optional.None[int]()
	}

	return optional.Some(at)
}

func (n *naturalSort) KeyAt(index int) optional.Value[string] {
	if index < 0 || index >= len(n.keys) {
		return optional.None[string]()
	}

	return optional.Some(n.keys[index])
}

func (n *naturalSort) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, key := range n.keys {
			if !yield(key) {
				return
			}
		}
	}
}

func (n *naturalSort) Clear() {
	n.keys = nil
}

func (n *naturalSort) Clone() Ordering[string] { //nolint:ireturn
	clone := &naturalSort{
		keys: make([]string, len(n.keys)),
	}
	copy(clone.keys, n.keys)

	return clone
}

// naturalLess is the strict total order the slice is sorted by: natural
// order where it decides, byte order between distinct keys that natural
// comparison ties. natsort.Compare alone cannot drive a binary search
// because it reports true for equal strings and for ties in both
// directions.
func naturalLess(a, b string) bool {
	if a == b {
		return false
	}

	ab := natsort.Compare(a, b)
	if ab != natsort.Compare(b, a) {
		return ab
	}

	return a < b
}

// search returns the key's index if present, or the insertion point that
// keeps the slice sorted by naturalLess.
func (n *naturalSort) search(key string) (int, bool) {
	at := sort.Search(len(n.keys), func(i int) bool {
		return !naturalLess(n.keys[i], key)
	})

	if at < len(n.keys) && n.keys[at] == key {
		return at, true
	}

	return at, false
}
