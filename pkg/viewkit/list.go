package viewkit

import "container/list"

// List returns a view over a doubly linked list.
// Every element value of the list must hold a T.
func List[T any](l *list.List) *ListView[T] {
	return &ListView[T]{List: l}
}

type ListView[T any] struct {
	List *list.List
}

func (v *ListView[T]) Begin() Cursor[T] {
	var front *list.Element
	if v.List != nil {
		front = v.List.Front()
	}
	return &listCursor[T]{view: v, element: front}
}

// End is the nil element, the position where list.Element.Next lands after the back of the list.
func (v *ListView[T]) End() Cursor[T] {
	return &listCursor[T]{view: v}
}

type listCursor[T any] struct {
	view    *ListView[T]
	element *list.Element
}

func (c *listCursor[T]) Value() T {
	if debug && c.element == nil {
		panic(ErrDereferenceEnd)
	}
	return c.element.Value.(T)
}

func (c *listCursor[T]) Next() {
	if debug && c.element == nil {
		panic(ErrAdvancePastEnd)
	}
	c.element = c.element.Next()
}

func (c *listCursor[T]) Equal(oth Cursor[T]) bool {
	o, ok := oth.(*listCursor[T])
	return ok && o.view.List == c.view.List && o.element == c.element
}
