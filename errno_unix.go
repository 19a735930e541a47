//go:build unix

package xgxdiag

import "golang.org/x/sys/unix"

const errnoInterrupted = unix.EINTR

// osErrorText resolves errno to the platform description. unix.Errno keeps
// its own immutable table, so this is reentrant without a caller buffer.
func osErrorText(errno int) string {
	return unix.Errno(errno).Error()
}
