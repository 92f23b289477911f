package viewkit

import "go.llib.dev/frameless/pkg/errorkit"

// Iterable is anything that can produce a cursor pair for a traversal.
// Every call to Begin or End returns a fresh Cursor,
// so the same Iterable can be traversed any number of times.
type Iterable[T any] interface {
	// Begin returns a cursor that points at the first element,
	// or one that equals End when the Iterable is empty.
	Begin() Cursor[T]
	// End returns the end sentinel.
	End() Cursor[T]
}

// Cursor is a traversal position within an Iterable.
type Cursor[T any] interface {
	// Value dereferences the cursor.
	// Calling Value on an end cursor is undefined behavior.
	Value() T
	// Next advances the cursor by one position.
	// Calling Next on an end cursor is undefined behavior.
	Next()
	// Equal reports whether the two cursors point at the same position.
	// Adaptor cursors compare by their position in the underlying source,
	// so the cursors of two filters over the same source can be equal.
	// Cursors of different sources are never equal.
	Equal(Cursor[T]) bool
}

const (
	// ErrAdvancePastEnd is the panic value of a debug build when Next is called on an end cursor.
	ErrAdvancePastEnd errorkit.Error = "viewkit: advance past end"
	// ErrDereferenceEnd is the panic value of a debug build when Value is called on an end cursor.
	ErrDereferenceEnd errorkit.Error = "viewkit: dereference of end cursor"
)

