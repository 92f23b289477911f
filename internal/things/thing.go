// Package things is a small demo domain that exercises viewkit views
// against the same operations written as hand-written loops.
package things

//go:generate mockgen -destination thingsmock/reporter.go -source thing.go -package thingsmock

import (
	"context"

	uuid "github.com/satori/go.uuid"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

const (
	OpSome    = "some_operation"
	OpAnother = "another_operation"
)

type Thing struct {
	ID     uuid.UUID
	Value  int
	Name   string
	Visits int
}

func New(value int, name string) Thing {
	return Thing{ID: uuid.NewV4(), Value: value, Name: name}
}

func (t Thing) IsOdd() bool { return t.Value%2 != 0 }

// IsNamedBob matches both "Bob" and "bob".
func (t Thing) IsNamedBob() bool { return t.Name == "Bob" || t.Name == "bob" }

func (t *Thing) SomeOperation(ctx context.Context, r Reporter) {
	t.Visits++
	r.Report(ctx, OpSome, *t)
}

func (t *Thing) AnotherOperation(ctx context.Context, r Reporter) {
	t.Visits++
	r.Report(ctx, OpAnother, *t)
}

// Reporter receives a Thing after an operation has been performed on it.
type Reporter interface {
	Report(ctx context.Context, operation string, thing Thing)
}

// LogReporter reports operations as structured log entries.
// When Logger is nil, the package level logger is used.
type LogReporter struct {
	Logger *logging.Logger
}

func (r LogReporter) Report(ctx context.Context, operation string, thing Thing) {
	fields := logging.Fields{
		"name":   thing.Name,
		"value":  thing.Value,
		"visits": thing.Visits,
		"id":     thing.ID.String(),
	}
	if r.Logger == nil {
		logger.Info(ctx, operation, fields)
		return
	}
	r.Logger.Info(ctx, operation, fields)
}
