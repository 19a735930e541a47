// format.go — fmt.Formatter for *Exception.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, multi-line:
//	             file.go:42: os_error(permanent): open(path): no such file or directory
//	             id: 1b4e28ba-2fa1-11d2-883f-0016d3cca427
//	             context:
//	               handler.go:17: request = 7
//	             cause: no such file or directory
//	             stack:
//	               pkg.fn file.go:42
//	%q       → quoted Error().
package xgxdiag

import (
	"fmt"
	"io"
)

func (e *Exception) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*xgxdiag.Exception=%s)", verb, e.Error())
	}
}

func formatVerbose(w io.Writer, e *Exception) {
	_, _ = fmt.Fprintf(w, "%s:%d: %s(%s)", e.File, e.Line, e.Nature, e.Durability)
	if e.Description != "" {
		_, _ = io.WriteString(w, ": "+e.Description)
	}
	_, _ = fmt.Fprintf(w, "\nid: %s", e.ID)

	if len(e.notes) > 0 {
		_, _ = io.WriteString(w, "\ncontext:")
		for _, n := range e.notes {
			_, _ = io.WriteString(w, "\n  "+n.String())
		}
	}

	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
