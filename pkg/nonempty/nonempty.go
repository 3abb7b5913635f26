// Package nonempty provides a sequence container that holds at least one
// element. It backs the OpenDRIVE collections whose cardinality is 1..*,
// such as the geometries of a plan view or the connections of a junction.
package nonempty

import "errors"

// ErrEmpty is returned when a Sequence would be constructed without elements.
var ErrEmpty = errors.New("nonempty: sequence requires at least one element")

// Sequence is a slice guaranteed to hold at least one element.
// The zero value is not valid; build one with Of or From.
type Sequence[T any] struct {
	items []T
}

// Of builds a Sequence from a first element and any number of further ones.
func Of[T any](head T, tail ...T) Sequence[T] {
	items := make([]T, 0, 1+len(tail))
	items = append(items, head)
	items = append(items, tail...)
	return Sequence[T]{items: items}
}

// From builds a Sequence from a slice. It fails with ErrEmpty when the slice
// has no elements. The slice is not copied.
func From[T any](items []T) (Sequence[T], error) {
	if len(items) == 0 {
		return Sequence[T]{}, ErrEmpty
	}
	return Sequence[T]{items: items}, nil
}

// Head returns the first element.
func (s Sequence[T]) Head() T { return s.items[0] }

// Len returns the number of elements, always at least one for a constructed
// Sequence.
func (s Sequence[T]) Len() int { return len(s.items) }

// Slice returns the backing slice. Mutating its elements mutates the
// sequence; shrinking a copy of it does not.
func (s Sequence[T]) Slice() []T { return s.items }

// Append returns a Sequence with the given elements added at the end.
func (s Sequence[T]) Append(items ...T) Sequence[T] {
	return Sequence[T]{items: append(s.items, items...)}
}
