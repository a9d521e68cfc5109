package sortable

// Key constrains a type to be usable both as a native map key and as a
// priority. Priority-ordered backends need LessThan to rank keys, while the
// container hosting the backend needs == for its lookup table; Key demands
// both. All wrapper types in this package satisfy it.
type Key[T any] interface {
	comparable
	Sortable[T]
}
