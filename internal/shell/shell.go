// Package shell is an interactive command interpreter over the things demo.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/lazyview/internal/things"
)

const (
	ErrUnknownCommand  errorkit.Error = "unknown command"
	ErrInvalidArgument errorkit.Error = "invalid argument"

	errExit errorkit.Error = "exit"
)

// LineReader is the source of the shell input.
// Readline returns io.EOF when the input is exhausted.
type LineReader interface {
	Readline() (string, error)
}

// Commands lists the command names the shell understands.
var Commands = []string{"add", "all", "else", "odd", "bob", "list", "help", "exit"}

const helpText = `Commands:
  add VALUE NAME   - Add a thing
  all              - Do something with all things
  else             - Do something else with all things
  odd              - Do something with the odd things
  bob              - Do something with the odd things named bob
  list             - List the things
  help             - Show this help message
  exit             - Exit the shell
`

type Shell struct {
	Logic  things.Logic
	Input  LineReader
	Output io.Writer
}

// Run executes commands until the input is exhausted or the exit command is given.
// Command errors are reported on Output and do not stop the shell.
func (sh Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := sh.Input.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		err = sh.Exec(ctx, line)
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			logger.Debug(ctx, "shell command failed", logging.Field("line", line), logging.ErrField(err))
			if _, werr := fmt.Fprintf(sh.Output, "error: %s\n", err.Error()); werr != nil {
				return werr
			}
		}
	}
}

// Exec runs a single command line.
func (sh Shell) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "add":
		return sh.add(args)
	case "all":
		sh.Logic.DoSomethingWithAllThings(ctx)
	case "else":
		sh.Logic.DoSomethingElseWithAllThings(ctx)
	case "odd":
		sh.Logic.DoSomethingWithOddThings(ctx)
	case "bob":
		sh.Logic.DoSomethingWithOddThingsNamedBob(ctx)
	case "list":
		return sh.list()
	case "help":
		_, err := io.WriteString(sh.Output, helpText)
		return err
	case "exit":
		return errExit
	default:
		return ErrUnknownCommand.F("%q", cmd)
	}
	return nil
}

func (sh Shell) add(args []string) error {
	if len(args) != 2 {
		return ErrInvalidArgument.F("usage: add VALUE NAME")
	}
	value, err := strconv.Atoi(args[0])
	if err != nil {
		return ErrInvalidArgument.F("value %q is not an integer", args[0])
	}
	thing := things.New(value, args[1])
	sh.Logic.Add(thing)
	_, err = fmt.Fprintf(sh.Output, "added %s\n", thing.ID)
	return err
}

func (sh Shell) list() error {
	w := tabwriter.NewWriter(sh.Output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVALUE\tNAME\tVISITS")
	for _, t := range sh.Logic.Things() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", t.ID, t.Value, t.Name, t.Visits)
	}
	return w.Flush()
}
