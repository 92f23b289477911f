package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/tasker"

	"go.llib.dev/lazyview/internal/config"
	"go.llib.dev/lazyview/internal/shell"
	"go.llib.dev/lazyview/internal/things"
)

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "things"))
	err := Main(ctx)
	if err != nil {
		logger.Fatal(ctx, "error in main", logging.ErrField(err))
		os.Exit(1)
	}
}

func Main(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lgr := &logging.Logger{Out: os.Stdout, Level: cfg.Level()}
	logic := &things.ViewLogic{Reporter: things.LogReporter{Logger: lgr}}
	for _, t := range []things.Thing{
		things.New(1, "bob"),
		things.New(2, "Bob"),
		things.New(3, "Bob"),
		things.New(4, "Alice"),
		things.New(4, "Carol"),
	} {
		logic.Add(t)
	}

	lgr.Info(ctx, "all things")
	logic.DoSomethingWithAllThings(ctx)
	lgr.Info(ctx, "odd things named bob")
	logic.DoSomethingWithOddThingsNamedBob(ctx)

	if !cfg.Interactive {
		return nil
	}
	return tasker.Main(ctx, func(ctx context.Context) error {
		return runShell(ctx, cfg, logic)
	})
}

func runShell(ctx context.Context, cfg config.Config, logic things.Logic) (returnErr error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(shell.Commands))
	for _, cmd := range shell.Commands {
		items = append(items, readline.PcItem(cmd))
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "things> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    readline.NewPrefixCompleter(items...),
	})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	defer func() { returnErr = errorkit.Merge(returnErr, rl.Close()) }()

	sh := shell.Shell{Logic: logic, Input: lineReader{rl: rl}, Output: rl.Stdout()}
	return sh.Run(ctx)
}

// lineReader ends the input on an interrupt of an empty line.
type lineReader struct{ rl *readline.Instance }

func (r lineReader) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		if len(line) == 0 {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}
