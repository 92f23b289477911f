package viewkit

// Slice returns a read-only view over a slice.
// The view shares the backing array of the slice, no element is copied.
// Use Ref when the elements need to be mutated through the view.
func Slice[T any](vs []T) *SliceView[T] {
	return &SliceView[T]{Slice: vs}
}

type SliceView[T any] struct {
	Slice []T
}

func (v *SliceView[T]) Begin() Cursor[T] {
	return &sliceCursor[T]{view: v}
}

func (v *SliceView[T]) End() Cursor[T] {
	return &sliceCursor[T]{view: v, index: len(v.Slice)}
}

type sliceCursor[T any] struct {
	view  *SliceView[T]
	index int
}

func (c *sliceCursor[T]) Value() T {
	if debug && len(c.view.Slice) <= c.index {
		panic(ErrDereferenceEnd)
	}
	return c.view.Slice[c.index]
}

func (c *sliceCursor[T]) Next() {
	if debug && len(c.view.Slice) <= c.index {
		panic(ErrAdvancePastEnd)
	}
	c.index++
}

func (c *sliceCursor[T]) Equal(oth Cursor[T]) bool {
	o, ok := oth.(*sliceCursor[T])
	return ok && o.view == c.view && o.index == c.index
}

// Ref returns a view that shares the caller's slice by reference.
// Value yields the address of the element within the container,
// so mutation done through the view is visible in the original slice.
//
// The bounds of a traversal are taken when Begin and End are called.
// Appending to the container during a traversal is undefined behavior,
// just like it would be for a hand-written loop holding element addresses.
func Ref[T any](container *[]T) *RefView[T] {
	return &RefView[T]{Container: container}
}

type RefView[T any] struct {
	Container *[]T
}

func (v *RefView[T]) Begin() Cursor[*T] {
	return &refCursor[T]{container: v.Container}
}

func (v *RefView[T]) End() Cursor[*T] {
	return &refCursor[T]{container: v.Container, index: v.len()}
}

func (v *RefView[T]) len() int {
	if v.Container == nil {
		return 0
	}
	return len(*v.Container)
}

type refCursor[T any] struct {
	container *[]T
	index     int
}

func (c *refCursor[T]) Value() *T {
	if debug && len(*c.container) <= c.index {
		panic(ErrDereferenceEnd)
	}
	return &(*c.container)[c.index]
}

func (c *refCursor[T]) Next() {
	if debug && len(*c.container) <= c.index {
		panic(ErrAdvancePastEnd)
	}
	c.index++
}

// Equal treats cursors of two RefView as equal when they reference the same container at the same index.
func (c *refCursor[T]) Equal(oth Cursor[*T]) bool {
	o, ok := oth.(*refCursor[T])
	return ok && o.container == c.container && o.index == c.index
}
