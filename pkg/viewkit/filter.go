package viewkit

// Filter returns a lazy view of the elements of src for which the predicate holds,
// in their original order.
//
// The predicate is evaluated exactly once for every candidate element of a traversal.
// A cursor of the view either points at an element that satisfied the predicate or equals End.
func Filter[T any](src Iterable[T], predicate func(T) bool) *FilterView[T] {
	return &FilterView[T]{Source: src, Predicate: predicate}
}

type FilterView[T any] struct {
	Source    Iterable[T]
	Predicate func(T) bool
}

// Begin seeks to the first element that satisfies the predicate.
func (v *FilterView[T]) Begin() Cursor[T] {
	c := &filterCursor[T]{
		view:   v,
		cursor: v.Source.Begin(),
		end:    v.Source.End(),
	}
	c.seek()
	return c
}

func (v *FilterView[T]) End() Cursor[T] {
	end := v.Source.End()
	return &filterCursor[T]{view: v, cursor: end, end: end}
}

// Filter narrows the view further with another predicate.
func (v *FilterView[T]) Filter(predicate func(T) bool) *FilterView[T] {
	return Filter[T](v, predicate)
}

type filterCursor[T any] struct {
	view   *FilterView[T]
	cursor Cursor[T]
	end    Cursor[T]
}

func (c *filterCursor[T]) seek() {
	for !c.cursor.Equal(c.end) && !c.view.Predicate(c.cursor.Value()) {
		c.cursor.Next()
	}
}

func (c *filterCursor[T]) Value() T {
	if debug && c.cursor.Equal(c.end) {
		panic(ErrDereferenceEnd)
	}
	return c.cursor.Value()
}

func (c *filterCursor[T]) Next() {
	if debug && c.cursor.Equal(c.end) {
		panic(ErrAdvancePastEnd)
	}
	c.cursor.Next()
	c.seek()
}

// Equal compares the underlying cursors, the predicate is not part of the cursor identity.
func (c *filterCursor[T]) Equal(oth Cursor[T]) bool {
	o, ok := oth.(*filterCursor[T])
	return ok && c.cursor.Equal(o.cursor)
}
