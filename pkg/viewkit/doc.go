// Package viewkit provides lazy views over sequence-like containers.
//
// # Summary
//
// A view is an Iterable: something that can hand out a begin and an end Cursor.
// Views never materialize their elements.
// Filter skips the elements that fail a predicate,
// Map presents every element through a transform,
// and Ref shares a caller-owned slice so the elements can be mutated in place.
// Views compose freely, a Map of a Filter of a Ref is still just an Iterable.
//
//	things := viewkit.Ref(&ts)
//	odd := viewkit.Filter(things, func(t *Thing) bool { return t.Value%2 == 1 })
//	names := viewkit.Map(odd, func(t *Thing) string { return t.Name })
//
//	for c, end := names.Begin(), names.End(); !c.Equal(end); c.Next() {
//		fmt.Println(c.Value())
//	}
//
// # Evaluation
//
// Filter evaluates its predicate exactly once per candidate element of a traversal.
// Map evaluates its transform at most once per visited position of a cursor.
// Visitation order is always the order of the source container.
//
// # Misuse
//
// Advancing or dereferencing an end cursor is undefined behavior,
// so is changing the structure of a referenced container during a traversal.
// Build with the viewkitdebug tag to turn the end cursor misuse into panics.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Lazy_evaluation
package viewkit
