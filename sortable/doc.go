// Package sortable defines the total-order capability required of priority
// keys, plus wrapper types for the usual primitives.
//
// # Overview
//
// The [Sortable] interface extends
// [github.com/amp-labs/amp-indexedmap/compare.Comparable] with a LessThan
// method, giving a type both equality and ordering. The [Key] constraint
// narrows Sortable further to types that are also valid Go map keys; the
// priority-ordered backend
// [github.com/amp-labs/amp-indexedmap/ordering.NewMinHeap] requires Key
// because its keys double as lookup-table keys in the indexed container.
//
// [Int], [String], and [Byte] wrap the corresponding built-ins so they can be
// used as priority keys without further ceremony.
//
// # Usage
//
//	m := indexed.New[sortable.Int, string](ordering.NewMinHeap[sortable.Int]())
//	m.Set(sortable.Int(42), "answer")
//	m.Set(sortable.Int(7), "lucky")
//
//	// Keys() yields 7, 42 (ascending priority)
//	for k := range m.Keys() {
//	    fmt.Println(int(k))
//	}
//
// # Custom Key Types
//
// Any comparable struct can be a priority key once it implements Sortable:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j == other
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// LessThan must be a strict weak ordering: irreflexive, transitive, and
// asymmetric. Equals should agree with it (neither a.LessThan(b) nor
// b.LessThan(a) exactly when a.Equals(b)), or priority iteration order
// between such keys is unspecified.
//
// # Thread Safety
//
// The wrapper types are plain value types and safe to share. Collections
// built over them make their own thread-safety promises.
package sortable
