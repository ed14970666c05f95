package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/plaintodo/internal/model"
	"github.com/idilsaglam/plaintodo/internal/store/textstore"
	"github.com/idilsaglam/plaintodo/internal/ui"
)

// Store is the task storage the commands run against.
type Store interface {
	List() ([]model.Task, error)
	Add(text string) error
	Delete(pos int) error
	Complete(pos int) (model.Task, error)
	Report() (model.Report, error)
}

// Options carries what the commands need from main.
type Options struct {
	Store   Store
	Printer *ui.Printer
	Logger  *log.Logger
	Browse  func() error // starts the interactive view; nil when unavailable
}

// Run dispatches one invocation. Every handled outcome, argument errors
// included, exits 0; only a broken interactive view returns 1.
func Run(args []string, opt Options) int {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cmd := Parse(args)
	logger.Debug("dispatch", "command", cmd.Kind, "args", len(args))

	p := opt.Printer
	switch cmd.Kind {
	case CmdUsage, CmdHelp:
		PrintHelp(p)

	case CmdList:
		doList(opt)

	case CmdAdd:
		if cmd.ArgErr != nil {
			p.Fail("Error: Missing todo string. Nothing added!")
			break
		}
		doAdd(opt, cmd.Text)

	case CmdDelete:
		switch {
		case errors.Is(cmd.ArgErr, errMissingArg):
			p.Fail("Error: Missing NUMBER for deleting todo.")
		case cmd.ArgErr != nil:
			p.Fail("Error: Invalid NUMBER for deleting todo.")
		default:
			doDelete(opt, cmd.Number)
		}

	case CmdDone:
		switch {
		case errors.Is(cmd.ArgErr, errMissingArg):
			p.Fail("Error: Missing NUMBER for marking todo as done.")
		case cmd.ArgErr != nil:
			p.Fail("Error: Invalid NUMBER for marking todo as done.")
		default:
			doDone(opt, cmd.Number)
		}

	case CmdReport:
		doReport(opt)

	case CmdBrowse:
		if opt.Browse == nil {
			p.Fail("Error: interactive view unavailable")
			return 1
		}
		if err := opt.Browse(); err != nil {
			p.Fail("Error: " + err.Error())
			return 1
		}

	case CmdInvalid:
		p.Fail("Invalid Argument")
		PrintHelp(p)
	}
	return 0
}

func PrintHelp(p *ui.Printer) {
	p.Plain(`todo - a plain-text todo list

Usage:
  todo <command> [arg]

Commands:
  add "todo item"    Add a new todo
  ls                 Show remaining todos, newest first
  del NUMBER         Delete a todo
  done NUMBER        Complete a todo
  report             Statistics
  browse             Interactive list
  help               Show usage

Todos live in todo.txt and done.txt in the current directory.
`)
}

// -------------- subcommand impls ----------------

func doList(opt Options) {
	tasks, err := opt.Store.List()
	if err != nil {
		opt.Printer.Fail("Error: " + cause(err))
		return
	}
	if len(tasks) == 0 {
		opt.Printer.Info("There are no pending todos!")
		return
	}
	for _, t := range tasks {
		opt.Printer.Task(t.Position, t.Text)
	}
}

func doAdd(opt Options, text string) {
	err := opt.Store.Add(text)
	switch {
	case err == nil:
		opt.Printer.OK(`Added todo: "` + text + `"`)
	case textstore.IsKind(err, textstore.Duplicate):
		opt.Printer.Fail("Error: Todo Already Exists")
	default:
		opt.Printer.Fail("Error: " + cause(err))
	}
}

func doDelete(opt Options, pos int) {
	err := opt.Store.Delete(pos)
	switch {
	case err == nil:
		opt.Printer.OK(fmt.Sprintf("Deleted todo #%d", pos))
	case textstore.IsKind(err, textstore.InvalidArgument):
		opt.Printer.Fail(fmt.Sprintf("Error: todo #%d does not exist. Nothing deleted.", pos))
	case textstore.IsKind(err, textstore.NotFound):
		opt.Printer.Fail("Error: No Todo Found")
	default:
		opt.Printer.Fail("Error: " + cause(err))
	}
}

// doDone reports a missing pending file with the same message as a bad
// position, unlike doDelete.
func doDone(opt Options, pos int) {
	_, err := opt.Store.Complete(pos)
	switch {
	case err == nil:
		opt.Printer.OK(fmt.Sprintf("Marked todo #%d as done.", pos))
	case textstore.IsKind(err, textstore.InvalidArgument), textstore.IsKind(err, textstore.NotFound):
		opt.Printer.Fail(fmt.Sprintf("Error: todo #%d does not exist.", pos))
	default:
		opt.Printer.Fail("Error: " + cause(err))
	}
}

func doReport(opt Options) {
	r, err := opt.Store.Report()
	for _, e := range flatten(err) {
		opt.Printer.Fail("Error: " + cause(e))
	}
	t := opt.Printer.Theme()
	opt.Printer.Plain(fmt.Sprintf("%s Pending : %s Completed : %s\n",
		t.Title.Render(r.Date.Format(model.DateLayout)),
		t.Pending.Render(fmt.Sprint(r.Pending)),
		t.Success.Render(fmt.Sprint(r.Completed)),
	))
}

// -------------- error helpers --------------

// cause strips the store's operation/kind framing and keeps the underlying
// error text.
func cause(err error) string {
	var se *textstore.Error
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return err.Error()
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
