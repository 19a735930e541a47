// callsite_test.go — the call-site helpers: location capture, filtering,
// natures and the syscall retry loop.
package xgxdiag

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"syscall"
	"testing"
)

func TestLog_RendersCallerLocationAndRespectsThreshold(t *testing.T) {
	prev := SetMinSeverity(SeverityWarning)
	t.Cleanup(func() { SetMinSeverity(prev) })

	ctx, col := collectingCtx(t)
	Log(ctx, SeverityInfo, "x", 1) // below threshold
	Log(ctx, SeverityError, "x, len(s)", 1, 3)

	msgs := col.Messages()
	if len(msgs) != 1 {
		t.Fatalf("want one message; got %q", msgs)
	}
	m := msgs[0]
	if !strings.HasPrefix(m, "error: ") || !strings.Contains(m, "callsite_test.go:") {
		t.Fatalf("unexpected prefix/location: %q", m)
	}
	if !strings.HasSuffix(m, ": x = 1; len(s) = 3\n") {
		t.Fatalf("unexpected body: %q", m)
	}
}

func TestRequireAndAssert(t *testing.T) {
	t.Parallel()

	ctx, col := collectingCtx(t)
	if !Require(ctx, true, "n > 0", "n", 1) {
		t.Fatal("Require(true) should return true")
	}
	if Require(ctx, false, "n > 0", "n", 0) {
		t.Fatal("Require(false) should return false")
	}
	if Assert(ctx, false, "len(q) == 0", "len(q)", 2) {
		t.Fatal("Assert(false) should return false")
	}

	got := col.Recoverable()
	if len(got) != 2 {
		t.Fatalf("want 2 records; got %d", len(got))
	}
	if got[0].Nature != NaturePrecondition || got[0].Description != "expected n > 0; n = 0" {
		t.Fatalf("Require record: %s %q", got[0].Nature, got[0].Description)
	}
	if got[1].Nature != NatureLocalBug || got[1].Description != "expected len(q) == 0; len(q) = 2" {
		t.Fatalf("Assert record: %s %q", got[1].Nature, got[1].Description)
	}
	if !strings.HasSuffix(got[0].File, "callsite_test.go") {
		t.Fatalf("record file should be the caller; got %q", got[0].File)
	}
}

func TestMust_Fatal(t *testing.T) {
	calls := stubTerminate(t)

	ctx, col := collectingCtx(t)
	Must(ctx, true, "ok", "")
	if *calls != 0 || len(col.Fatal()) != 0 {
		t.Fatal("Must(true) should do nothing")
	}
	Must(ctx, false, "ok", "")
	if *calls != 1 || len(col.Fatal()) != 1 {
		t.Fatalf("Must(false): terminate=%d fatal=%d", *calls, len(col.Fatal()))
	}
}

func TestFail_RendersLikeALog(t *testing.T) {
	t.Parallel()

	ctx, col := collectingCtx(t)
	err := Fail(ctx, `"unreachable", state`, "unreachable", "closed")
	e, ok := AsException(err)
	if !ok {
		t.Fatalf("Fail should return *Exception; got %T", err)
	}
	if e.Description != "unreachable; state = closed" {
		t.Fatalf("description: %q", e.Description)
	}
	if len(col.Recoverable()) != 1 {
		t.Fatal("Fail should deliver once")
	}
}

func TestSyscall_RetriesInterrupted(t *testing.T) {
	t.Parallel()

	ctx, col := collectingCtx(t)
	attempts := 0
	err := Syscall(ctx, "n = read(fd)", "fd", func() error {
		attempts++
		if attempts < 3 {
			return syscall.EINTR
		}
		return nil
	}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts: want=3 got=%d", attempts)
	}
	if len(col.Recoverable()) != 0 {
		t.Fatal("interrupted calls must not be reported")
	}
}

func TestSyscall_ReportsErrno(t *testing.T) {
	t.Parallel()

	ctx, col := collectingCtx(t)
	err := Syscall(ctx, "f = os.Open(path)", "path", func() error {
		_, err := os.Open("/definitely/not/here")
		return err
	}, "/definitely/not/here")

	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("cause should stay reachable; got %v", err)
	}
	if !IsOsError(err) {
		t.Fatal("want os_error nature")
	}
	e, _ := AsException(err)
	want := "os.Open(path): " + osErrorText(int(syscall.ENOENT)) + "; path = /definitely/not/here"
	if e.Description != want {
		t.Fatalf("description: want=%q got=%q", want, e.Description)
	}
	if got := col.Recoverable(); len(got) != 1 || got[0] != e {
		t.Fatal("record should be delivered once and returned")
	}
}

func TestSyscall_ForeignErrorUsesItsText(t *testing.T) {
	t.Parallel()

	ctx, _ := collectingCtx(t)
	boom := errors.New("short write")
	err := Syscall(ctx, "w.Write(p)", "", func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped boom; got %v", err)
	}
	e, _ := AsException(err)
	if e.Description != "w.Write(p): short write" {
		t.Fatalf("description: %q", e.Description)
	}
}

func TestContext_AttachesCallerNote(t *testing.T) {
	t.Parallel()

	ctx, col := collectingCtx(t)
	ctx = Context(ctx, "user, attempt", "alice", 2)
	Require(ctx, false, "ready", "")

	got := col.Recoverable()
	if len(got) != 1 {
		t.Fatalf("want one record; got %d", len(got))
	}
	notes := got[0].Context()
	if len(notes) != 1 {
		t.Fatalf("want one note; got %v", notes)
	}
	if notes[0].Description != "user = alice; attempt = 2" || !strings.HasSuffix(notes[0].File, "callsite_test.go") {
		t.Fatalf("note: %+v", notes[0])
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	got := Stringify(1, "s", nil, errors.New("e"), []int{1, 2})
	want := []string{"1", "s", "<nil>", "e", "[1 2]"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value %d: want=%q got=%q", i, want[i], got[i])
		}
	}
	if Stringify() != nil {
		t.Fatal("no values should give nil")
	}
}
