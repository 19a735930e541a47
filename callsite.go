// callsite.go — helpers used where a failure or log statement happens.
//
// Each helper captures its caller's file and line and stringifies the
// values with fmt. The args parameter is the source text of the values as
// the caller wrote them; it is only used to name the values in the output:
//
//	xgxdiag.Log(ctx, xgxdiag.SeverityWarning, "user.ID, len(items)", user.ID, len(items))
//	// warning: handler.go:31: user.ID = 7; len(items) = 3
//
//	if !xgxdiag.Require(ctx, n > 0, "n > 0", "n", n) {
//		return
//	}
package xgxdiag

import (
	"context"
	"fmt"
)

// Stringify renders each value with fmt.Sprint.
func Stringify(values ...any) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Log renders and delivers a log line if sev passes the threshold.
func Log(ctx context.Context, sev Severity, args string, values ...any) {
	if !ShouldLog(sev) {
		return
	}
	file, line := callerLocation(1)
	LogInternal(ctx, file, line, sev, args, Stringify(values...))
}

// Require reports a precondition failure (recoverable) when cond is false.
// It returns cond.
func Require(ctx context.Context, cond bool, code, args string, values ...any) bool {
	if cond {
		return true
	}
	file, line := callerLocation(1)
	buildFault(ctx, file, line, NaturePrecondition, code, "", args, Stringify(values...)).Recoverable(ctx)
	return false
}

// Assert reports a local bug (recoverable) when cond is false. It returns
// cond.
func Assert(ctx context.Context, cond bool, code, args string, values ...any) bool {
	if cond {
		return true
	}
	file, line := callerLocation(1)
	buildFault(ctx, file, line, NatureLocalBug, code, "", args, Stringify(values...)).Recoverable(ctx)
	return false
}

// Must reports a local bug and terminates the process when cond is false.
func Must(ctx context.Context, cond bool, code, args string, values ...any) {
	if cond {
		return
	}
	file, line := callerLocation(1)
	buildFault(ctx, file, line, NatureLocalBug, code, "", args, Stringify(values...)).Fatal(ctx)
}

// Fail reports an unconditional local bug (recoverable). With no failing
// expression, the description is just the named values.
func Fail(ctx context.Context, args string, values ...any) error {
	file, line := callerLocation(1)
	return buildFault(ctx, file, line, NatureLocalBug, "", "", args, Stringify(values...)).Recoverable(ctx)
}

// Syscall runs call, retrying while it is interrupted. Any other failure is
// reported as a recoverable os_error fault described by code (an assignment
// prefix such as "n = " is dropped) and returned as *Exception wrapping the
// call's error.
func Syscall(ctx context.Context, code, args string, call func() error, values ...any) error {
	for {
		err := call()
		if err == nil {
			return nil
		}
		if IsInterrupted(err) {
			continue
		}
		osText := err.Error()
		if errno := ErrorNumber(err); errno != NoErrorNumber {
			osText = osErrorText(errno)
		}
		file, line := callerLocation(1)
		f := buildFault(ctx, file, line, NatureOsError, code, osText, args, Stringify(values...))
		f.exception.withCause(err)
		return f.Recoverable(ctx)
	}
}

// Context pushes a node that attaches the named values, tagged with the
// caller's location, to every failure raised under the returned context.
// Values are stringified now, not when a failure happens.
func Context(ctx context.Context, args string, values ...any) context.Context {
	file, line := callerLocation(1)
	return WithContext(ctx, Note{File: file, Line: line, MacroArgs: args, Values: Stringify(values...)})
}
