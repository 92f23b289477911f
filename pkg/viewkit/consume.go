package viewkit

import (
	"errors"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Break can be returned from a ForEach callback to stop the iteration without an error.
const Break errorkit.Error = `viewkit:break`

// ForEach calls fn with every element of the Iterable in order.
// The first non-nil error stops the iteration and is returned, except Break.
func ForEach[T any](it Iterable[T], fn func(T) error) error {
	for c, end := it.Begin(), it.End(); !c.Equal(end); c.Next() {
		err := fn(c.Value())
		if errors.Is(err, Break) {
			break
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Collect materializes the Iterable into a slice.
func Collect[T any](it Iterable[T]) []T {
	vs := make([]T, 0)
	for c, end := it.Begin(), it.End(); !c.Equal(end); c.Next() {
		vs = append(vs, c.Value())
	}
	return vs
}

// Count will iterate over and count the total number of elements.
func Count[T any](it Iterable[T]) int {
	var total int
	for c, end := it.Begin(), it.End(); !c.Equal(end); c.Next() {
		total++
	}
	return total
}

// First returns the first element of the Iterable.
func First[T any](it Iterable[T]) (T, bool) {
	if c := it.Begin(); !c.Equal(it.End()) {
		return c.Value(), true
	}
	var zero T
	return zero, false
}

// Last returns the last element of the Iterable.
// Cursors only move forward, so the whole Iterable is traversed.
func Last[T any](it Iterable[T]) (T, bool) {
	var (
		last  T
		found bool
	)
	for c, end := it.Begin(), it.End(); !c.Equal(end); c.Next() {
		last, found = c.Value(), true
	}
	return last, found
}

func Reduce[R, T any](it Iterable[T], initial R, fn func(R, T) R) R {
	var v = initial
	for c, end := it.Begin(), it.End(); !c.Equal(end); c.Next() {
		v = fn(v, c.Value())
	}
	return v
}

// Seq bridges an Iterable into a range-over-func sequence.
// Every range loop over the returned sequence starts a new traversal.
func Seq[T any](it Iterable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c, end := it.Begin(), it.End(); !c.Equal(end); c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}
