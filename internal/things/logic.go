package things

import (
	"context"

	"go.llib.dev/lazyview/pkg/viewkit"
)

// Logic is a collection of things with operations over its different subsets.
type Logic interface {
	Add(Thing)
	DoSomethingWithAllThings(context.Context)
	DoSomethingElseWithAllThings(context.Context)
	DoSomethingWithOddThings(context.Context)
	DoSomethingWithOddThingsNamedBob(context.Context)
	// Things returns the current state of the collection in insertion order.
	Things() []Thing
}

// LoopLogic selects its subsets with hand-written loops.
// Every operation uses a different loop style.
type LoopLogic struct {
	Reporter Reporter

	things []Thing
}

func (l *LoopLogic) Add(t Thing) { l.things = append(l.things, t) }

func (l *LoopLogic) Things() []Thing { return append([]Thing(nil), l.things...) }

func (l *LoopLogic) DoSomethingWithAllThings(ctx context.Context) {
	for i := 0; i < len(l.things); i++ {
		l.things[i].SomeOperation(ctx, l.Reporter)
	}
}

func (l *LoopLogic) DoSomethingElseWithAllThings(ctx context.Context) {
	things, i := l.things, 0
	for i != len(things) {
		things[i].AnotherOperation(ctx, l.Reporter)
		i++
	}
}

func (l *LoopLogic) DoSomethingWithOddThings(ctx context.Context) {
	for i := range l.things {
		if l.things[i].IsOdd() {
			l.things[i].SomeOperation(ctx, l.Reporter)
		}
	}
}

func (l *LoopLogic) DoSomethingWithOddThingsNamedBob(ctx context.Context) {
	things, i := l.things, 0
	for i != len(things) {
		if things[i].IsOdd() && things[i].IsNamedBob() {
			things[i].SomeOperation(ctx, l.Reporter)
		}
		i++
	}
}

// ViewLogic selects its subsets by composing views over its own storage.
// The views refer to the stored things, so operations update them in place.
type ViewLogic struct {
	Reporter Reporter

	things []Thing
}

func (l *ViewLogic) Add(t Thing) { l.things = append(l.things, t) }

func (l *ViewLogic) Things() []Thing { return append([]Thing(nil), l.things...) }

func (l *ViewLogic) DoSomethingWithAllThings(ctx context.Context) {
	execute(ctx, l.Reporter, l.allThings(), (*Thing).SomeOperation)
}

func (l *ViewLogic) DoSomethingElseWithAllThings(ctx context.Context) {
	execute(ctx, l.Reporter, l.allThings(), (*Thing).AnotherOperation)
}

func (l *ViewLogic) DoSomethingWithOddThings(ctx context.Context) {
	execute(ctx, l.Reporter, l.oddThings(), (*Thing).SomeOperation)
}

func (l *ViewLogic) DoSomethingWithOddThingsNamedBob(ctx context.Context) {
	execute(ctx, l.Reporter, l.oddThingsNamedBob(), (*Thing).SomeOperation)
}

func (l *ViewLogic) allThings() *viewkit.RefView[Thing] {
	return viewkit.Ref(&l.things)
}

func (l *ViewLogic) oddThings() *viewkit.FilterView[*Thing] {
	return viewkit.Filter(l.allThings(), func(t *Thing) bool { return t.IsOdd() })
}

func (l *ViewLogic) oddThingsNamedBob() *viewkit.FilterView[*Thing] {
	return l.oddThings().Filter(func(t *Thing) bool { return t.IsNamedBob() })
}

type operation func(*Thing, context.Context, Reporter)

func execute(ctx context.Context, r Reporter, things viewkit.Iterable[*Thing], op operation) {
	for c, end := things.Begin(), things.End(); !c.Equal(end); c.Next() {
		op(c.Value(), ctx, r)
	}
}
