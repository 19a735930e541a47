package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxdiag "github.com/xgx-io/xgx-diag"
)

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]ColorMode{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"ON":     ColorOn,
		"always": ColorOn,
		"off":    ColorOff,
		"never":  ColorOff,
	} {
		got, err := ParseColorMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestCallback_PlainOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cb := New(&buf, ColorOff)
	ctx := xgxdiag.WithCallback(context.Background(), cb)
	ctx = xgxdiag.WithContext(ctx, xgxdiag.Note{File: "h.go", Line: 2, MacroArgs: "req", Values: []string{"9"}})

	xgxdiag.LogInternal(ctx, "a.go", 1, xgxdiag.SeverityWarning, "x", []string{"1"})
	xgxdiag.BuildFault(ctx, "b.go", 5, xgxdiag.NatureLocalBug, 0, "ok", "", nil).Recoverable(ctx)
	cb.LogMessage("no newline")

	want := "warning: a.go:1: x = 1\n" +
		"recoverable: b.go:5: local_bug: expected ok\n" +
		"  context: h.go:2: req = 9\n" +
		"no newline\n"
	assert.Equal(t, want, buf.String())
}

func TestCallback_ColorOn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cb := New(&buf, ColorOn)
	cb.LogMessage("error: a.go:1: boom\n")
	cb.OnFatalException(xgxdiag.NewException(xgxdiag.NatureOther, xgxdiag.DurabilityTemporary, "c.go", 3, "x"))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "a.go:1: boom\n")
	assert.Contains(t, out, "c.go:3: other: x\n")
	assert.NotContains(t, out, "error: a.go", "label should be wrapped in escape codes")
}

func TestCallback_ColorOnlyForExactLabels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, ColorOn).LogMessage("Error: disk full\n")
	assert.Equal(t, "Error: disk full\n", buf.String())
}

func TestCallback_AutoOnBufferIsPlain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, ColorAuto).LogMessage("info: a.go:1: hi\n")
	assert.Equal(t, "info: a.go:1: hi\n", buf.String())
}

func TestCallback_Verbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cb := New(&buf, ColorOff, WithVerbose(true))
	e := xgxdiag.NewException(xgxdiag.NatureOsError, xgxdiag.DurabilityPermanent, "d.go", 4, "close(fd): bad")
	cb.OnRecoverableException(e)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "recoverable: d.go:4: os_error(permanent): close(fd): bad\nid: "), out)
	assert.Contains(t, out, e.ID.String())
}
