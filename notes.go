// notes.go — append-only context notes attached to an in-flight Exception.
//
// Design:
//   • Internal representation: []ContextNote in the order notes were added
//     (innermost scope first, since the innermost Context sees the
//     exception first).
//   • Appends always allocate a fresh backing array, so a slice handed out
//     by Exception.Context() never observes later notes.
package xgxdiag

import "strconv"

// ContextNote is one piece of call-site context: where it was recorded and
// the log-style description assembled for it.
type ContextNote struct {
	File        string
	Line        int
	Description string
}

func (n ContextNote) String() string {
	if n.Description == "" {
		return n.File + ":" + strconv.Itoa(n.Line)
	}
	return n.File + ":" + strconv.Itoa(n.Line) + ": " + n.Description
}

type notes []ContextNote

// notesCloneAppend returns a NEW slice with dst's contents followed by add.
func notesCloneAppend(dst notes, add ...ContextNote) notes {
	n := len(dst)
	if len(add) == 0 {
		return dst
	}
	out := make(notes, n+len(add))
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// notesCopy returns a copy safe to hand to callers, or nil when empty.
func notesCopy(src notes) []ContextNote {
	if len(src) == 0 {
		return nil
	}
	out := make([]ContextNote, len(src))
	copy(out, src)
	return out
}
