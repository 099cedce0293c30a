// Package iterx provides filters and iterators for selecting elements from slices.
package iterx

import "iter"

// Filter is a function that returns true if the element of an [iter.Seq] should be yielded to the caller.
type Filter[T any] func(T) bool

// And combines multiple [Filter] into one, where both must be true to yield the element.
func (f Filter[T]) And(other Filter[T]) Filter[T] {
	if other == nil {
		return f
	}
	return func(element T) bool {
		return f(element) && other(element)
	}
}

// SliceIter is an [iter.Seq] of selected slice elements.
type SliceIter[T any] iter.Seq[T]

// Select will use the provided [Filter] to select elements from a slice, returning a [SliceIter].
func Select[T any](slice []T, filter Filter[T]) SliceIter[T] {
	return func(yield func(T) bool) {
		if filter == nil {
			panic("nil filter")
		}
		for _, element := range slice {
			if filter(element) {
				if !yield(element) {
					return
				}
			}
		}
	}
}

// Slice collects the elements of the [SliceIter], returning nil if there are none.
func (i SliceIter[T]) Slice() []T {
	var elements []T
	i(func(element T) bool {
		elements = append(elements, element)
		return true
	})
	return elements
}
