package textstore

import (
	"errors"
	"fmt"
)

// Kind classifies store failures so callers can pick a message per kind.
type Kind int

const (
	// NotFound means the pending or completed file does not exist.
	NotFound Kind = iota + 1
	// InvalidArgument covers non-positive or out-of-range positions and
	// task text that would break the one-line-per-task layout.
	InvalidArgument
	// Duplicate means the task text is already a pending line.
	Duplicate
	// IOFailure is any other read or write error.
	IOFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case InvalidArgument:
		return "invalid argument"
	case Duplicate:
		return "duplicate"
	case IOFailure:
		return "io failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by every Store operation that fails.
type Error struct {
	Kind     Kind
	Op       string // "list", "add", "delete", "complete", "report"
	Position int    // set for delete and complete
	Err      error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.String()
	if e.Position != 0 {
		msg += fmt.Sprintf(" (todo #%d)", e.Position)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries kind k.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

var (
	errNonPositive = errors.New("position must be positive")
	errOutOfRange  = errors.New("position out of range")
	errMultiline   = errors.New("task text contains a line break")
	errExists      = errors.New("todo already exists")
)
