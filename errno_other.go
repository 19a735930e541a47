//go:build !unix

package xgxdiag

import "syscall"

const errnoInterrupted = syscall.EINTR

func osErrorText(errno int) string {
	return syscall.Errno(errno).Error()
}
