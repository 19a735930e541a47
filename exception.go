// exception.go — the failure record routed through the callback chain.
//
// An Exception is created once at the failure site, decorated in flight by
// the Context nodes it passes through (WrapContext appends notes, nothing
// else changes), and consumed by exactly one root callback delivery.
//
// Interop:
//   - *Exception implements error, so recoverable paths can return it.
//   - Unwrap exposes the OS error (if any), so errors.Is(err, fs.ErrNotExist)
//     and friends work on syscall faults.
package xgxdiag

import (
	"strconv"

	"github.com/google/uuid"
)

// Exception is one assertion or system-call failure.
type Exception struct {
	// ID correlates the log lines a single failure produces across sinks.
	ID          uuid.UUID
	Nature      Nature
	Durability  Durability
	File        string
	Line        int
	Description string

	notes notes
	cause error
	stk   Stack
}

// NewException builds a bare record. Most callers want BuildFault.
func NewException(nature Nature, durability Durability, file string, line int, description string) *Exception {
	return &Exception{
		ID:          uuid.New(),
		Nature:      nature,
		Durability:  durability,
		File:        file,
		Line:        line,
		Description: description,
	}
}

// Error renders "file:line: nature: description".
func (e *Exception) Error() string {
	head := e.File + ":" + strconv.Itoa(e.Line) + ": " + e.Nature.String()
	if e.Description == "" {
		return head
	}
	return head + ": " + e.Description
}

func (e *Exception) Unwrap() error { return e.cause }

// Stack returns the frames captured at construction, most recent first.
func (e *Exception) Stack() Stack { return e.stk }

// Context returns a copy of the notes attached so far, in the order they
// were added.
func (e *Exception) Context() []ContextNote { return notesCopy(e.notes) }

// WrapContext appends a context note. Earlier notes are never replaced.
func (e *Exception) WrapContext(file string, line int, description string) {
	e.notes = notesCloneAppend(e.notes, ContextNote{File: file, Line: line, Description: description})
}

// withCause records the OS error a syscall fault was built from.
func (e *Exception) withCause(err error) *Exception {
	e.cause = err
	return e
}

var _ error = (*Exception)(nil)
