// stack.go — call-site and stack capture.
//
// Two consumers:
//   - the call-site helpers (Log, Require, Syscall, ...) need the file and
//     line of their caller, which is what a C macro would have pasted in;
//   - BuildFault records the stack of the failure site on the Exception so
//     the verbose %+v form can show it.
//
// Both go through runtime.Callers + runtime.CallersFrames, which resolve
// inlined frames correctly.
package xgxdiag

import (
	"runtime"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	File     string
	Line     int
	Function string
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const defaultMaxDepth = 32

// captureStack records up to maxDepth frames above its caller, skipping
// skip additional frames. skip=0 starts at the function that called
// captureStack.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	// +2: runtime.Callers and captureStack itself.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more {
			break
		}
	}
	return out
}

// callerLocation returns the file and line skip frames above the function
// that calls callerLocation. skip=1 is that function's caller.
func callerLocation(skip int) (file string, line int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "<unknown>", 0
	}
	return file, line
}
