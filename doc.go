// Package xgxdiag assembles diagnostic messages for log statements, failed
// assertions and failed system calls, and routes them through a chain of
// scoped context handlers to a root callback.
//
// # Messages
//
// A call site supplies the source text of its values and the values
// themselves. The text is split on top-level commas to name each value:
//
//	xgxdiag.Log(ctx, xgxdiag.SeverityWarning, "fd, len(buf)", fd, len(buf))
//	// warning: io.go:12: fd = 3; len(buf) = 512
//
//	xgxdiag.Require(ctx, a > b, "a > b", "a, b", a, b)
//	// io.go:14: precondition: expected a > b; a = 1; b = 2
//
//	xgxdiag.Syscall(ctx, "n = read(fd)", "fd", read, fd)
//	// io.go:16: os_error: read(fd): bad file descriptor; fd = 3
//
// Names that are empty or start with a double quote (string literals) are
// not printed. If the text does not split into as many names as there are
// values, a warning is logged and the message is still produced.
//
// # Routing
//
// The current Callback is carried by context.Context. WithContext pushes a
// node in front of it that decorates failure records and forwards
// everything; Context is the call-site form that attaches named values:
//
//	ctx = xgxdiag.Context(ctx, "request.ID", request.ID)
//
// Without any node or WithCallback, events reach the process root
// (RootCallback), by default a zap logger on stderr. Roots deliver; nodes
// never do. Fatal faults terminate the process after the root returns.
//
// # Threshold
//
// SetMinSeverity/ShouldLog hold the process-wide log threshold used by Log.
// Rendering functions (LogInternal, Describe) never filter.
//
// # Formatting
//
// *Exception implements fmt.Formatter:
//   - %v, %s → "file:line: nature: description"
//   - %+v    → multi-line with id, context notes, cause and stack
//   - %q     → quoted Error()
package xgxdiag
