// severity.go — log severities and the process-wide minimum threshold.
//
// The label table is stable: its order matches the numeric Severity values
// and the strings appear verbatim at the start of every rendered log line.
//
// Filtering is a call-site concern. The core only stores the threshold and
// answers ShouldLog; LogInternal never drops a message itself.
package xgxdiag

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Severity classifies a log statement.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
	// SeverityDebug sorts last on purpose; see ShouldLog.
	SeverityDebug
)

var severityLabels = [...]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
	SeverityFatal:   "fatal",
	SeverityDebug:   "debug",
}

// String returns the label used in rendered log lines.
func (s Severity) String() string {
	if int(s) < len(severityLabels) {
		return severityLabels[s]
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// Severities returns every severity in table order.
func Severities() []Severity {
	out := make([]Severity, len(severityLabels))
	for i := range out {
		out[i] = Severity(i)
	}
	return out
}

// ParseSeverity maps a label (case-insensitive) back to its Severity.
// "warn" is accepted as an alias for "warning".
func ParseSeverity(label string) (Severity, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "warn" {
		return SeverityWarning, nil
	}
	if s, ok := SeverityOfLabel(l); ok {
		return s, nil
	}
	return 0, fmt.Errorf("xgxdiag: unknown severity %q", label)
}

// SeverityOfLabel matches label exactly against the rendered labels, as
// found at the start of a LogInternal line. Unlike ParseSeverity it is
// case-sensitive and knows no aliases.
func SeverityOfLabel(label string) (Severity, bool) {
	for i, s := range severityLabels {
		if s == label {
			return Severity(i), true
		}
	}
	return 0, false
}

var minSeverity atomic.Uint32

func init() {
	minSeverity.Store(uint32(SeverityWarning))
}

// MinSeverity reports the current process-wide threshold.
func MinSeverity() Severity {
	return Severity(minSeverity.Load())
}

// SetMinSeverity replaces the threshold and returns the previous one.
// It is normally called once at startup (or by config.Watcher on reload).
func SetMinSeverity(s Severity) Severity {
	return Severity(minSeverity.Swap(uint32(s)))
}

// ShouldLog reports whether a statement of severity s passes the threshold.
// Comparison is numeric, so debug statements are never suppressed by the
// default threshold.
func ShouldLog(s Severity) bool {
	return s >= MinSeverity()
}
