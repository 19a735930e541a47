package xgxdiag

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"
)

func TestErrorNumber(t *testing.T) {
	t.Parallel()

	_, openErr := os.Open("/definitely/not/here")
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, NoErrorNumber},
		{"plain error", errors.New("x"), NoErrorNumber},
		{"bare errno", syscall.EBADF, int(syscall.EBADF)},
		{"wrapped errno", fmt.Errorf("close: %w", syscall.EBADF), int(syscall.EBADF)},
		{"path error", openErr, int(syscall.ENOENT)},
		{"interrupted", syscall.EINTR, NoErrorNumber},
		{"wrapped interrupted", fmt.Errorf("read: %w", syscall.EINTR), NoErrorNumber},
	}
	for _, tc := range cases {
		if got := ErrorNumber(tc.err); got != tc.want {
			t.Fatalf("%s: want=%d got=%d", tc.name, tc.want, got)
		}
	}
}

func TestIsInterrupted(t *testing.T) {
	t.Parallel()

	if !IsInterrupted(fmt.Errorf("x: %w", syscall.EINTR)) {
		t.Fatal("wrapped EINTR should be interrupted")
	}
	if IsInterrupted(syscall.EAGAIN) || IsInterrupted(nil) {
		t.Fatal("only EINTR is interrupted")
	}
}

func TestOsErrorText_MatchesPlatform(t *testing.T) {
	t.Parallel()

	if got, want := osErrorText(int(syscall.ENOENT)), syscall.ENOENT.Error(); got != want {
		t.Fatalf("want=%q got=%q", want, got)
	}
}
