package viewkit

// Map allows you to present the elements of a view through a transform function.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Map never skips an element, the view has exactly as many elements as its source.
//
// The produced value is returned by value, it doesn't alias the source element.
// The transform runs at most once per visited position of a cursor,
// repeated Value calls reuse the last result until the cursor moves.
// When the source element is changed behind the cursor, as it can be through a Ref view,
// the cached result stays stale until Next is called.
func Map[To any, From any](src Iterable[From], transform func(From) To) *MapView[From, To] {
	return &MapView[From, To]{Source: src, Transform: transform}
}

type MapView[From any, To any] struct {
	Source    Iterable[From]
	Transform func(From) To
}

func (v *MapView[From, To]) Begin() Cursor[To] {
	return &mapCursor[From, To]{view: v, cursor: v.Source.Begin()}
}

func (v *MapView[From, To]) End() Cursor[To] {
	return &mapCursor[From, To]{view: v, cursor: v.Source.End()}
}

type mapCursor[From any, To any] struct {
	view   *MapView[From, To]
	cursor Cursor[From]

	value  To
	mapped bool
}

func (c *mapCursor[From, To]) Value() To {
	if !c.mapped {
		c.value = c.view.Transform(c.cursor.Value())
		c.mapped = true
	}
	return c.value
}

func (c *mapCursor[From, To]) Next() {
	c.cursor.Next()
	var zero To
	c.value, c.mapped = zero, false
}

func (c *mapCursor[From, To]) Equal(oth Cursor[To]) bool {
	o, ok := oth.(*mapCursor[From, To])
	return ok && c.cursor.Equal(o.cursor)
}
