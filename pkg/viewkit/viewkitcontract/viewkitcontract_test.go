package viewkitcontract_test

import (
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/lazyview/pkg/viewkit"
	"go.llib.dev/lazyview/pkg/viewkit/viewkitcontract"
)

func TestIterable(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		viewkitcontract.Iterable[int](func(tb testing.TB) viewkit.Iterable[int] {
			return viewkit.Slice[int](nil)
		}).Test(t)
	})

	t.Run("populated", func(t *testing.T) {
		mk := viewkitcontract.Make[viewkit.Iterable[string]](func(tb testing.TB) viewkit.Iterable[string] {
			t := testcase.ToT(&tb)
			var vs []string
			t.Random.Repeat(1, 7, func() { vs = append(vs, t.Random.String()) })
			return viewkit.Slice(vs)
		})
		viewkitcontract.Iterable[string](mk).Test(t)
	})
}
