// Package zero produces zero values for generic type parameters.
//
// Lookup-style APIs in this module signal absence with a (value, ok) pair
// whose value half is the zero of the payload type. Spelling that zero out
// inside a generic function takes a spare var declaration; zero.Value is the
// one-line version of it.
package zero

import "reflect"

// Value returns the zero value of T.
//
//	zero.Value[int]()     // 0
//	zero.Value[string]()  // ""
//	zero.Value[*Thing]()  // nil
func Value[T any]() T {
	var v T

	return v
}

// IsZero reports whether value equals the zero value of T. Comparison is deep,
// so composite types (slices, maps, structs with pointers) are handled.
func IsZero[T any](value T) bool {
	var v T

	return reflect.DeepEqual(value, v)
}
