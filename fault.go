// fault.go — build a failure record and hand it to the current callback.
//
// A Fault wraps exactly one Exception. Recoverable and Fatal both consume
// it; whichever runs first wins and the other becomes a no-op.
package xgxdiag

import (
	"context"
	"os"
)

// exitCodeFatal matches the status Go uses for an unrecovered panic.
const exitCodeFatal = 2

// terminate ends the process after a fatal delivery. Tests replace it.
var terminate = func() { os.Exit(exitCodeFatal) }

// Fault carries a freshly built Exception to its single delivery.
type Fault struct {
	exception *Exception
}

// BuildFault assembles the description of a failure and wraps it with its
// provenance. OS errors are described in syscall style, everything else in
// assertion style; durability is always permanent.
func BuildFault(ctx context.Context, file string, line int, nature Nature, errno int, condition, macroArgs string, values []string) *Fault {
	osText := ""
	if nature == NatureOsError {
		osText = osErrorText(errno)
	}
	return buildFault(ctx, file, line, nature, condition, osText, macroArgs, values)
}

func buildFault(ctx context.Context, file string, line int, nature Nature, condition, osText, macroArgs string, values []string) *Fault {
	desc := describe(ctx, nature.style(), condition, osText, macroArgs, values)
	e := NewException(nature, DurabilityPermanent, file, line, desc)
	// skip buildFault and its exported caller.
	e.stk = captureStack(2, defaultMaxDepth)
	return &Fault{exception: e}
}

// Exception returns the record, or nil once it has been delivered.
func (f *Fault) Exception() *Exception { return f.exception }

func (f *Fault) take() *Exception {
	e := f.exception
	f.exception = nil
	return e
}

// Recoverable delivers the record to CallbackFrom(ctx) and returns it so
// the caller can propagate it as an error.
func (f *Fault) Recoverable(ctx context.Context) *Exception {
	e := f.take()
	if e == nil {
		return nil
	}
	CallbackFrom(ctx).OnRecoverableException(e)
	return e
}

// Fatal delivers the record to CallbackFrom(ctx) and terminates the
// process. Termination also happens if the callback panics.
func (f *Fault) Fatal(ctx context.Context) {
	e := f.take()
	if e == nil {
		return
	}
	defer terminate()
	CallbackFrom(ctx).OnFatalException(e)
}

// AddContext appends a log-style description of the given arguments to e
// as a context note tagged with file and line.
func AddContext(ctx context.Context, e *Exception, file string, line int, macroArgs string, values []string) {
	e.WrapContext(file, line, describe(ctx, StyleLog, "", "", macroArgs, values))
}
