// Package compare defines the equality capability used by ordering backends.
package compare

// Comparable is implemented by types that decide equality for themselves.
// The heap backend locates keys by Equals rather than ==, so key types keep
// control over what counts as the same key.
type Comparable[T any] interface {
	// Equals reports whether other is equal to this value.
	Equals(other T) bool
}

// Equals applies a's Equals method to b. Handy as a function value where a
// method expression would need the concrete type.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
