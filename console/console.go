// Package console provides a root callback that writes plain text lines to
// an io.Writer, colouring severity labels when the writer is a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"

	xgxdiag "github.com/xgx-io/xgx-diag"
)

// ColorMode selects when output is coloured.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// ParseColorMode accepts auto, on/always and off/never.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	}
	return "", fmt.Errorf("console: unknown color mode %q", s)
}

var labelColors = map[xgxdiag.Severity]*color.Color{
	xgxdiag.SeverityDebug:   color.New(color.FgHiBlack),
	xgxdiag.SeverityInfo:    color.New(color.FgCyan),
	xgxdiag.SeverityWarning: color.New(color.FgYellow, color.Bold),
	xgxdiag.SeverityError:   color.New(color.FgRed, color.Bold),
	xgxdiag.SeverityFatal:   color.New(color.FgHiRed, color.Bold),
}

var (
	recoverableColor = color.New(color.FgRed)
	fatalColor       = color.New(color.FgHiRed, color.Bold)
)

// Callback is a root callback writing to w. Writes are serialised.
type Callback struct {
	mu      sync.Mutex
	w       io.Writer
	color   bool
	verbose bool
}

// Option configures a Callback.
type Option func(*Callback)

// WithVerbose prints exceptions in their multi-line %+v form.
func WithVerbose(v bool) Option {
	return func(c *Callback) { c.verbose = v }
}

// New returns a Callback writing to w (os.Stderr when nil).
func New(w io.Writer, mode ColorMode, opts ...Option) *Callback {
	if w == nil {
		w = os.Stderr
	}
	c := &Callback{w: w, color: useColor(w, mode)}
	for _, o := range opts {
		o(c)
	}
	return c
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
}

// LogMessage writes text as is, colouring a leading severity label.
func (c *Callback) LogMessage(text string) {
	if c.color {
		if label, rest, ok := strings.Cut(text, ": "); ok {
			if sev, ok := xgxdiag.SeverityOfLabel(label); ok {
				text = paint(labelColors[sev], label) + ": " + rest
			}
		}
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	c.write(text)
}

func (c *Callback) OnRecoverableException(e *xgxdiag.Exception) {
	c.write(c.exceptionLine(recoverableColor, "recoverable", e))
}

func (c *Callback) OnFatalException(e *xgxdiag.Exception) {
	c.write(c.exceptionLine(fatalColor, "fatal", e))
}

func (c *Callback) exceptionLine(col *color.Color, kind string, e *xgxdiag.Exception) string {
	label := kind
	if c.color {
		label = paint(col, kind)
	}
	if c.verbose {
		return fmt.Sprintf("%s: %+v\n", label, e)
	}
	var sb strings.Builder
	sb.WriteString(label + ": " + e.Error() + "\n")
	for _, n := range e.Context() {
		sb.WriteString("  context: " + n.String() + "\n")
	}
	return sb.String()
}

// paint applies col regardless of color.NoColor; whether to colour at all
// was already decided per writer.
func paint(col *color.Color, s string) string {
	c := *col
	c.EnableColor()
	return c.Sprint(s)
}

func (c *Callback) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.w, s)
}

var _ xgxdiag.Callback = (*Callback)(nil)
