package sortable

// String is a sortable wrapper for the built-in string type, ordered
// lexicographically by byte value. For human-friendly ordering of numbered
// names ("item2" before "item10") use the natural-sort backend with plain
// strings instead of a heap over String.
type String string

var _ Sortable[String] = (*String)(nil)

// Equals returns true if this String has the same value as the other String.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String sorts before the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
