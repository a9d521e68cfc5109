// Package optional models values that may be absent.
//
// The indexed container never signals absence with errors or sentinel
// values. Lookups that find nothing and position queries against backends
// that track no positions both come back as an empty Value. A Value is
// conceptually a collection of size zero or one.
package optional

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Value holds either one value of type T or nothing. The zero Value is None.
// Construct with Some or None rather than struct literals.
type Value[T any] struct {
	value   T
	present bool
}

// Some returns a Value holding the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, present: true}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty returns true if a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.present
}

// Empty returns true if no value is present.
func (o Value[T]) Empty() bool {
	return !o.present
}

// Get returns the value and whether it is present. This is the default way
// to take a value out.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOrElse returns the value if present, otherwise the given default.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.present {
		return o.value
	}

	return defaultValue
}

// GetOrElseFunc returns the value if present, otherwise whatever the given
// function produces. Use when the default is expensive to build.
func (o Value[T]) GetOrElseFunc(defaultFunc func() T) T {
	if o.present {
		return o.value
	}

	return defaultFunc()
}

// GetOrPanic returns the value, panicking if none is present. Reserve for
// call sites where emptiness is a programming error.
func (o Value[T]) GetOrPanic() T {
	if !o.present {
		panic("optional: GetOrPanic called on None")
	}

	return o.value
}

// OrElse returns this Value if non-empty, otherwise the alternative.
func (o Value[T]) OrElse(alternative Value[T]) Value[T] {
	if o.present {
		return o
	}

	return alternative
}

// OrElseFunc returns this Value if non-empty, otherwise the Value produced
// by the given function.
func (o Value[T]) OrElseFunc(alternativeFunc func() Value[T]) Value[T] {
	if o.present {
		return o
	}

	return alternativeFunc()
}

// Equals reports whether both Values are empty, or both hold values the
// given function considers equal.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.present != other.present {
		return false
	}

	if !o.present {
		return true
	}

	return eq(o.value, other.value)
}

// Filter returns this Value unchanged if it holds a value satisfying the
// predicate, otherwise None.
func (o Value[T]) Filter(predicate func(T) bool) Value[T] {
	if o.present && predicate(o.value) {
		return o
	}

	return None[T]()
}

// All yields the value if present, nothing otherwise, so a Value can be
// ranged over like any other collection.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ForEach applies f to the value if present.
func (o Value[T]) ForEach(f func(T)) {
	for v := range o.All() {
		f(v)
	}
}

// Size returns 1 if a value is present, 0 otherwise.
func (o Value[T]) Size() int {
	if o.present {
		return 1
	}

	return 0
}

// String renders "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map applies f to the value if present, producing a Value of the result
// type. None maps to None.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.present {
		return Some(f(o.value))
	}

	return None[U]()
}

// FlatMap applies f, itself Value-returning, to the value if present. None
// stays None. Chains Value-producing lookups without nesting.
func FlatMap[T any, U any](o Value[T], f func(T) Value[U]) Value[U] {
	if o.present {
		return f(o.value)
	}

	return None[U]()
}

// MarshalJSON implements json.Marshaler. Some(v) marshals as v itself, None
// as null, so an optional field reads naturally in a JSON document. A
// present value whose own encoding is null (an untyped nil, say) is
// indistinguishable from None after a round trip.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler. null decodes to None, anything
// else to Some of the decoded value.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()

		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*o = Some(value)

	return nil
}
