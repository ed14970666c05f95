package cli

import (
	"errors"
	"strconv"
	"strings"
)

// CommandKind enumerates everything the command line can ask for.
type CommandKind int

const (
	CmdUsage CommandKind = iota // no arguments
	CmdHelp
	CmdList
	CmdAdd
	CmdDelete
	CmdDone
	CmdReport
	CmdBrowse
	CmdInvalid // unknown command or too many arguments
)

func (k CommandKind) String() string {
	switch k {
	case CmdUsage:
		return "usage"
	case CmdHelp:
		return "help"
	case CmdList:
		return "ls"
	case CmdAdd:
		return "add"
	case CmdDelete:
		return "del"
	case CmdDone:
		return "done"
	case CmdReport:
		return "report"
	case CmdBrowse:
		return "browse"
	default:
		return "invalid"
	}
}

var (
	errMissingArg = errors.New("missing argument")
	errNotNumber  = errors.New("not a number")
)

// Command is the parsed form of the process arguments.
type Command struct {
	Kind   CommandKind
	Text   string // add
	Number int    // del, done
	ArgErr error  // errMissingArg or errNotNumber when the argument is unusable
}

// Parse turns args (without the program name) into a Command. At most one
// argument after the command name is accepted.
func Parse(args []string) Command {
	if len(args) == 0 {
		return Command{Kind: CmdUsage}
	}
	if len(args) > 2 {
		return Command{Kind: CmdInvalid}
	}
	name, arg, hasArg := args[0], "", len(args) == 2
	if hasArg {
		arg = args[1]
	}

	switch name {
	case "help":
		return Command{Kind: CmdHelp}
	case "ls":
		return Command{Kind: CmdList}
	case "report":
		return Command{Kind: CmdReport}
	case "browse":
		return Command{Kind: CmdBrowse}
	case "add":
		c := Command{Kind: CmdAdd, Text: arg}
		if strings.TrimSpace(arg) == "" {
			c.ArgErr = errMissingArg
		}
		return c
	case "del", "done":
		c := Command{Kind: CmdDelete}
		if name == "done" {
			c.Kind = CmdDone
		}
		if !hasArg {
			c.ArgErr = errMissingArg
			return c
		}
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			c.ArgErr = errNotNumber
			return c
		}
		c.Number = n
		return c
	}
	return Command{Kind: CmdInvalid}
}
