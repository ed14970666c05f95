package textstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/idilsaglam/plaintodo/internal/model"
)

// Plain-text storage. Two files, one task or record per line.
// No locking; concurrent invocations can lose updates.

const (
	PendingFileName   = "todo.txt"
	CompletedFileName = "done.txt"
)

// Store reads and rewrites the pending and completed files on fs.
// With afero.NewOsFs the relative default names resolve against the
// working directory at call time.
type Store struct {
	fs        afero.Fs
	pending   string
	completed string
	now       func() time.Time
	log       *log.Logger
}

type Option func(*Store)

// WithClock sets the source of "today" for completions and reports.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithPaths overrides the pending and completed file names.
func WithPaths(pending, completed string) Option {
	return func(s *Store) {
		s.pending = pending
		s.completed = completed
	}
}

func New(fs afero.Fs, opts ...Option) *Store {
	s := &Store{
		fs:        fs,
		pending:   PendingFileName,
		completed: CompletedFileName,
		now:       time.Now,
		log:       log.New(io.Discard),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// List returns pending tasks newest first. A missing pending file yields no
// tasks and no error.
func (s *Store) List() ([]model.Task, error) {
	lines, _, err := s.readLines(s.pending)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &Error{Kind: IOFailure, Op: "list", Err: err}
	}
	tasks := make([]model.Task, 0, len(lines))
	for i := len(lines); i > 0; i-- {
		tasks = append(tasks, model.Task{Position: i, Text: lines[i-1]})
	}
	return tasks, nil
}

// FindPosition returns the 1-based position of the first pending line equal
// to text, or 0 when there is none. A missing pending file is reported as a
// NotFound error.
func (s *Store) FindPosition(text string) (int, error) {
	lines, _, err := s.readLines(s.pending)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, &Error{Kind: NotFound, Op: "find", Err: err}
		}
		return 0, &Error{Kind: IOFailure, Op: "find", Err: err}
	}
	return indexOf(lines, text), nil
}

// Add appends text as a new pending task unless the same line already exists.
func (s *Store) Add(text string) error {
	if strings.ContainsAny(text, "\r\n") {
		return &Error{Kind: InvalidArgument, Op: "add", Err: errMultiline}
	}
	lines, terminated, err := s.readLines(s.pending)
	switch {
	case errors.Is(err, os.ErrNotExist):
		terminated = true
	case err != nil:
		return &Error{Kind: IOFailure, Op: "add", Err: err}
	}
	if indexOf(lines, text) > 0 {
		s.log.Debug("duplicate add skipped", "text", text)
		return &Error{Kind: Duplicate, Op: "add", Err: errExists}
	}

	entry := text + "\n"
	if !terminated {
		entry = "\n" + entry
	}
	if err := s.appendTo(s.pending, entry); err != nil {
		return &Error{Kind: IOFailure, Op: "add", Err: err}
	}
	s.log.Debug("appended", "file", s.pending, "text", text)
	return nil
}

// Delete removes the pending task at pos. Nothing is written unless pos
// names an existing line.
func (s *Store) Delete(pos int) error {
	_, err := s.remove("delete", pos)
	return err
}

// Complete removes the pending task at pos and appends a dated record of it
// to the completed file. It returns the task that was completed.
func (s *Store) Complete(pos int) (model.Task, error) {
	return s.remove("complete", pos)
}

// remove is the shared read-check-rewrite path of Delete and Complete.
func (s *Store) remove(op string, pos int) (model.Task, error) {
	if pos <= 0 {
		return model.Task{}, &Error{Kind: InvalidArgument, Op: op, Position: pos, Err: errNonPositive}
	}
	lines, _, err := s.readLines(s.pending)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Task{}, &Error{Kind: NotFound, Op: op, Position: pos, Err: err}
		}
		return model.Task{}, &Error{Kind: IOFailure, Op: op, Position: pos, Err: err}
	}
	if pos > len(lines) {
		s.log.Debug("position out of range, nothing written", "op", op, "position", pos, "lines", len(lines))
		return model.Task{}, &Error{Kind: InvalidArgument, Op: op, Position: pos, Err: errOutOfRange}
	}

	task := model.Task{Position: pos, Text: lines[pos-1]}
	if op == "complete" {
		// A failed rewrite below leaves the task pending with its
		// record already appended.
		record := model.CompletedRecord(s.now(), task.Text) + "\n"
		if err := s.appendTo(s.completed, record); err != nil {
			return model.Task{}, &Error{Kind: IOFailure, Op: op, Position: pos, Err: err}
		}
		s.log.Debug("appended", "file", s.completed, "text", task.Text)
	}

	rest := make([]string, 0, len(lines)-1)
	rest = append(rest, lines[:pos-1]...)
	rest = append(rest, lines[pos:]...)
	if err := s.rewrite(s.pending, rest); err != nil {
		return model.Task{}, &Error{Kind: IOFailure, Op: op, Position: pos, Err: err}
	}
	s.log.Debug("rewrote", "file", s.pending, "removed", pos, "remaining", len(rest))
	return task, nil
}

// Report counts non-blank pending lines and well-formed completed records.
// The two halves are independent: a failure reading one file is returned
// alongside a valid count for the other.
func (s *Store) Report() (model.Report, error) {
	r := model.Report{Date: s.now()}
	var errs []error

	pending, _, err := s.readLines(s.pending)
	switch {
	case err == nil:
		for _, l := range pending {
			if strings.TrimSpace(l) != "" {
				r.Pending++
			}
		}
	case !errors.Is(err, os.ErrNotExist):
		errs = append(errs, &Error{Kind: IOFailure, Op: "report", Err: err})
	}

	done, _, err := s.readLines(s.completed)
	switch {
	case err == nil:
		for _, l := range done {
			if model.IsCompletedRecord(l) {
				r.Completed++
			}
		}
	case !errors.Is(err, os.ErrNotExist):
		errs = append(errs, &Error{Kind: IOFailure, Op: "report", Err: err})
	}

	return r, errors.Join(errs...)
}

// -------------- file helpers --------------

// readLines returns the lines of name without terminators and whether the
// content ended with a terminator (true for an empty file).
func (s *Store) readLines(name string) ([]string, bool, error) {
	b, err := afero.ReadFile(s.fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	s.log.Debug("read", "file", name, "bytes", len(b))
	lines, terminated := splitLines(string(b))
	return lines, terminated, nil
}

func splitLines(content string) ([]string, bool) {
	if content == "" {
		return nil, true
	}
	terminated := strings.HasSuffix(content, "\n")
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, terminated
}

func (s *Store) appendTo(name, data string) error {
	f, err := s.fs.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	if _, err := f.WriteString(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

// rewrite replaces name with lines via a sibling temp file and a rename, so
// a failed write leaves the original untouched.
func (s *Store) rewrite(name string, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	tmp := name + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, []byte(b.String()), 0o644); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write file: %w", err)
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

func indexOf(lines []string, text string) int {
	for i, l := range lines {
		if l == text {
			return i + 1
		}
	}
	return 0
}
