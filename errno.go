// errno.go — the Go rendering of "read errno".
//
// Go reports OS failures as error values rather than through a global, so
// the accessor inspects an error chain for a syscall.Errno. Interrupted
// calls are never a real failure cause; they map to NoErrorNumber so call
// sites can retry instead of reporting.
package xgxdiag

import (
	"errors"
	"syscall"
)

// NoErrorNumber means "no OS error worth reporting".
const NoErrorNumber = -1

// ErrorNumber returns the errno carried by err, or NoErrorNumber when err
// is nil, carries no errno, or was an interrupted call (EINTR).
func ErrorNumber(err error) int {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return NoErrorNumber
	}
	if errno == errnoInterrupted {
		return NoErrorNumber
	}
	return int(errno)
}

// IsInterrupted reports whether err is an interrupted system call.
func IsInterrupted(err error) bool {
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == errnoInterrupted
}
