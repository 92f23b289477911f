package things_test

import (
	"context"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"

	"go.llib.dev/lazyview/internal/things"
)

type discard struct{}

func (discard) Report(context.Context, string, things.Thing) {}

func BenchmarkLogic(b *testing.B) {
	ctx := context.Background()
	mk := map[string]func() things.Logic{
		"loop": func() things.Logic { return &things.LoopLogic{Reporter: discard{}} },
		"view": func() things.Logic { return &things.ViewLogic{Reporter: discard{}} },
	}

	fixtures := make([]things.Thing, 0, 1024)
	for i := 0; i < cap(fixtures); i++ {
		name := randomdata.FirstName(randomdata.RandomGender)
		if randomdata.Boolean() {
			name = "Bob"
		}
		fixtures = append(fixtures, things.New(randomdata.Number(0, 1000), name))
	}

	for _, name := range []string{"loop", "view"} {
		logic := mk[name]()
		for _, th := range fixtures {
			logic.Add(th)
		}

		b.Run(name+"/all", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				logic.DoSomethingWithAllThings(ctx)
			}
		})
		b.Run(name+"/odd", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				logic.DoSomethingWithOddThings(ctx)
			}
		})
		b.Run(name+"/odd-bob", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				logic.DoSomethingWithOddThingsNamedBob(ctx)
			}
		})
	}
}
