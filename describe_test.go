// describe_test.go — description shapes, exact sizing and the mismatch warning.
package xgxdiag

import (
	"context"
	"fmt"
	"strings"
	"syscall"
	"testing"
)

// collectingCtx returns a context whose events land in a fresh Collector.
func collectingCtx(t *testing.T) (context.Context, *Collector) {
	t.Helper()
	c := NewCollector()
	return WithCallback(context.Background(), c), c
}

func TestDescribe_Shapes(t *testing.T) {
	t.Parallel()

	ebadf := osErrorText(int(syscall.EBADF))
	cases := []struct {
		name   string
		style  Style
		code   string
		errno  int
		args   string
		values []string
		want   string
	}{
		{"log no args", StyleLog, "", 0, "", nil, ""},
		{"log one arg", StyleLog, "ignored", 0, "x", []string{"5"}, "x = 5"},
		{"log two args", StyleLog, "", 0, "x, y", []string{"5", "7"}, "x = 5; y = 7"},
		{"log literal name hidden", StyleLog, "", 0, `"retrying", n`, []string{"retrying", "3"}, "retrying; n = 3"},
		{"assertion no args", StyleAssertion, "a > b", 0, "", nil, "expected a > b"},
		{"assertion with args", StyleAssertion, "a > b", 0, "a, b", []string{"1", "2"}, "expected a > b; a = 1; b = 2"},
		{"assertion without code is a log", StyleAssertion, "", 0, "x", []string{"5"}, "x = 5"},
		{"syscall strips assignment", StyleSyscall, "n = read(fd, buf, 10)", int(syscall.EBADF), "", nil, "read(fd, buf, 10): " + ebadf},
		{"syscall strips go short decl", StyleSyscall, "n := read(fd)", int(syscall.EBADF), "", nil, "read(fd): " + ebadf},
		{"syscall keeps equality", StyleSyscall, "a == b", int(syscall.EBADF), "", nil, "a == b: " + ebadf},
		{"syscall strips at inequality", StyleSyscall, "a != b", int(syscall.EBADF), "", nil, "b: " + ebadf},
		{"syscall strips at less-or-equal", StyleSyscall, "a <= b", int(syscall.EBADF), "", nil, "b: " + ebadf},
		{"syscall strips at greater-or-equal", StyleSyscall, "a >= b", int(syscall.EBADF), "", nil, "b: " + ebadf},
		{"syscall with args", StyleSyscall, "close(fd)", int(syscall.EBADF), "fd", []string{"3"}, "close(fd): " + ebadf + "; fd = 3"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx, col := collectingCtx(t)
			got := Describe(ctx, tc.style, tc.code, tc.errno, tc.args, tc.values)
			if got != tc.want {
				t.Fatalf("want=%q got=%q", tc.want, got)
			}
			if msgs := col.Messages(); len(msgs) != 0 {
				t.Fatalf("unexpected warnings: %q", msgs)
			}
		})
	}
}

func TestStripAssignment(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"n = read(fd)":         "read(fd)",
		"n =read(fd)":          "read(fd)",
		"n = \t read(fd)":      "read(fd)",
		"read(fd)":             "read(fd)",
		"a == b":               "a == b",
		"a <= b":               "b",
		"a >= b":               "b",
		"a != b":               "b",
		"f(x = 1)":             "f(x = 1)",
		`write(fd, "k=v")`:     `write(fd, "k=v")`,
		"x = f(a == b)":        "f(a == b)",
		"err = unix.Close(fd)": "unix.Close(fd)",
	}
	for in, want := range cases {
		if got := stripAssignment(in); got != want {
			t.Fatalf("stripAssignment(%q): want=%q got=%q", in, want, got)
		}
	}
}

func TestDescribe_MismatchDegradesAndWarns(t *testing.T) {
	t.Parallel()

	ctx, col := collectingCtx(t)
	// two top-level commas, four values
	got := Describe(ctx, StyleLog, "", 0, "a, b, c", []string{"1", "2", "3", "4"})
	if want := "a = 1; b = 2; c = 3; 4"; got != want {
		t.Fatalf("want=%q got=%q", want, got)
	}

	msgs := col.Messages()
	if len(msgs) != 1 {
		t.Fatalf("want exactly one warning; got %q", msgs)
	}
	w := msgs[0]
	for _, frag := range []string{"describe.go:", "into 4 names", "a, b, c", "\n"} {
		if !strings.Contains(w, frag) {
			t.Fatalf("warning missing %q: %q", frag, w)
		}
	}
}

func TestDescribe_TooManyNamesUsesFirst(t *testing.T) {
	t.Parallel()

	ctx, col := collectingCtx(t)
	got := Describe(ctx, StyleAssertion, "ok", 0, "a, b, c", []string{"1"})
	if want := "expected ok; a = 1"; got != want {
		t.Fatalf("want=%q got=%q", want, got)
	}
	if len(col.Messages()) != 1 {
		t.Fatalf("want one warning; got %q", col.Messages())
	}
}

func TestDescription_SizeMatchesRender(t *testing.T) {
	t.Parallel()

	styles := []Style{StyleLog, StyleAssertion, StyleSyscall}
	nameSets := []string{"", "x", `"lit"`, "f(a, b)"}
	for _, st := range styles {
		for n := 0; n <= 6; n++ {
			for _, nm := range nameSets {
				d := description{style: st, code: "a > b", osText: "bad file descriptor"}
				if st == StyleLog {
					d.code = ""
				}
				for i := 0; i < n; i++ {
					d.names = append(d.names, nm)
					d.values = append(d.values, strings.Repeat("v", i))
				}
				out := d.render() // panics on mismatch
				if len(out) != d.size() {
					t.Fatalf("style=%s n=%d name=%q: size=%d len=%d", st, n, nm, d.size(), len(out))
				}
			}
		}
	}
}

func TestStyle_String(t *testing.T) {
	t.Parallel()

	for st, want := range map[Style]string{
		StyleLog:       "log",
		StyleAssertion: "assertion",
		StyleSyscall:   "syscall",
		Style(9):       "style(9)",
	} {
		if got := fmt.Sprint(st); got != want {
			t.Fatalf("want=%q got=%q", want, got)
		}
	}
}
