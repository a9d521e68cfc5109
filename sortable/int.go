package sortable

// Int is a sortable wrapper for the built-in int type. It satisfies [Key],
// so it can serve as the key of a priority-ordered indexed map.
//
// Example:
//
//	m := indexed.New[sortable.Int, string](ordering.NewMinHeap[sortable.Int]())
//	m.Set(sortable.Int(5), "five")
//	m.Set(sortable.Int(3), "three")
//	// Keys() yields 3, 5 (ascending)
//
// Convert back with a plain type conversion:
//
//	var s sortable.Int = 42
//	n := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
