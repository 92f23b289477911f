//go:build viewkitdebug

package viewkit_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/lazyview/pkg/viewkit"
)

func TestDebugAssertions(t *testing.T) {
	type ints = viewkit.Iterable[int]
	views := map[string]func() ints{
		"Slice":  func() ints { return viewkit.Slice([]int{1, 2}) },
		"Filter": func() ints { return viewkit.Filter(viewkit.Slice([]int{1, 2, 3}), isOdd) },
		"Map":    func() ints { return viewkit.Map(viewkit.Slice([]int{1, 2}), double) },
	}
	for name, mk := range views {
		t.Run(name, func(t *testing.T) {
			end := mk().End()
			assert.Equal(t, viewkit.ErrAdvancePastEnd, assert.Panic(t, func() { end.Next() }))
			assert.Equal(t, viewkit.ErrDereferenceEnd, assert.Panic(t, func() { _ = mk().End().Value() }))
		})
	}

	t.Run("Ref", func(t *testing.T) {
		vs := []int{1}
		end := viewkit.Ref(&vs).End()
		assert.Equal(t, viewkit.ErrAdvancePastEnd, assert.Panic(t, func() { end.Next() }))
		assert.Equal(t, viewkit.ErrDereferenceEnd, assert.Panic(t, func() { _ = viewkit.Ref(&vs).End().Value() }))
	})
}
