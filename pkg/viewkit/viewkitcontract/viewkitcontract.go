package viewkitcontract

import (
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/lazyview/pkg/viewkit"
)

// Make constructs the subject of a contract for the given test.
type Make[S any] func(testing.TB) S

// Iterable is the behavioral contract of a viewkit.Iterable implementation.
// The Make function may return an empty Iterable.
func Iterable[T any](mk Make[viewkit.Iterable[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) viewkit.Iterable[T] {
		return mk(t)
	})

	s.Then("a fresh begin cursor equals another fresh begin cursor", func(t *testcase.T) {
		it := subject.Get(t)
		assert.True(t, it.Begin().Equal(it.Begin()))
	})

	s.Then("end cursors are equal to each other", func(t *testcase.T) {
		it := subject.Get(t)
		assert.True(t, it.End().Equal(it.End()))
	})

	s.Then("a cursor is equal to itself", func(t *testcase.T) {
		c := subject.Get(t).Begin()
		assert.True(t, c.Equal(c))
	})

	s.Then("begin equals end only when the Iterable has no elements", func(t *testcase.T) {
		it := subject.Get(t)
		isEmpty := it.Begin().Equal(it.End())
		assert.Equal(t, isEmpty, viewkit.Count(it) == 0)
	})

	s.Then("the cursor reaches the end after as many steps as there are elements", func(t *testcase.T) {
		it := subject.Get(t)
		var steps int
		for c, end := it.Begin(), it.End(); !c.Equal(end); c.Next() {
			steps++
		}
		assert.Equal(t, len(viewkit.Collect(it)), steps)
	})

	s.Then("dereferencing is repeatable without side effects", func(t *testcase.T) {
		it := subject.Get(t)
		for c, end := it.Begin(), it.End(); !c.Equal(end); c.Next() {
			assert.Equal(t, c.Value(), c.Value())
		}
	})

	s.Then("traversing the same Iterable twice yields the same elements", func(t *testcase.T) {
		it := subject.Get(t)
		assert.Equal(t, viewkit.Collect(it), viewkit.Collect(it))
	})

	s.Then("advancing one cursor doesn't move another cursor of the same Iterable", func(t *testcase.T) {
		it := subject.Get(t)
		a, b := it.Begin(), it.Begin()
		if a.Equal(it.End()) {
			t.Skip("the Iterable is empty")
		}
		a.Next()
		assert.True(t, b.Equal(it.Begin()))
	})

	return s.AsSuite("Iterable")
}
