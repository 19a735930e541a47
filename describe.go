// describe.go — assemble the one-line description of a log entry, failed
// assertion or failed system call.
//
// Shapes (names shown only when they are real expressions):
//
//	log:        x = 5; y = 7
//	assertion:  expected a > b; x = 5
//	syscall:    read(fd, buf, 10): Bad file descriptor; fd = 3
//
// The output length is computed before anything is written and the buffer
// is allocated once; render panics if the two ever disagree.
package xgxdiag

import (
	"context"
	"runtime"
	"strconv"
)

// Style selects the description shape.
type Style uint8

const (
	StyleLog Style = iota
	StyleAssertion
	StyleSyscall
)

func (s Style) String() string {
	switch s {
	case StyleLog:
		return "log"
	case StyleAssertion:
		return "assertion"
	case StyleSyscall:
		return "syscall"
	}
	return "style(" + strconv.Itoa(int(s)) + ")"
}

const (
	expectedPrefix = "expected "
	nameSep        = " = "
	argDelim       = "; "
	colon          = ": "
)

// description holds the resolved pieces of one assembled message.
type description struct {
	style  Style
	code   string
	osText string
	names  []string
	values []string
}

func (d *description) size() int {
	n := 0
	switch d.style {
	case StyleAssertion:
		n += len(expectedPrefix) + len(d.code)
	case StyleSyscall:
		n += len(d.code) + len(colon) + len(d.osText)
	}
	for i, v := range d.values {
		if i > 0 || d.style != StyleLog {
			n += len(argDelim)
		}
		if nameShown(d.names[i]) {
			n += len(d.names[i]) + len(nameSep)
		}
		n += len(v)
	}
	return n
}

func (d *description) render() string {
	size := d.size()
	buf := make([]byte, 0, size)
	switch d.style {
	case StyleAssertion:
		buf = append(buf, expectedPrefix...)
		buf = append(buf, d.code...)
	case StyleSyscall:
		buf = append(buf, d.code...)
		buf = append(buf, colon...)
		buf = append(buf, d.osText...)
	}
	for i, v := range d.values {
		if i > 0 || d.style != StyleLog {
			buf = append(buf, argDelim...)
		}
		if nameShown(d.names[i]) {
			buf = append(buf, d.names[i]...)
			buf = append(buf, nameSep...)
		}
		buf = append(buf, v...)
	}
	if len(buf) != size || cap(buf) != size {
		panic("xgxdiag: description size mismatch")
	}
	return string(buf)
}

// Describe assembles a description. code is ignored in log style; an
// assertion without code renders like a log entry. errno is only read in
// syscall style.
//
// If macroArgs does not split into len(values) names, a warning is sent to
// CallbackFrom(ctx) and the description is still produced with the names
// that were found.
func Describe(ctx context.Context, style Style, code string, errno int, macroArgs string, values []string) string {
	osText := ""
	if style == StyleSyscall {
		osText = osErrorText(errno)
	}
	return describe(ctx, style, code, osText, macroArgs, values)
}

// describe is Describe with the OS text already resolved, so syscall
// failures that carry no errno can still render their error text.
func describe(ctx context.Context, style Style, code, osText, macroArgs string, values []string) string {
	d := description{style: style, code: code, osText: osText, values: values}

	if len(values) > 0 {
		var found int
		d.names, found = SplitArgNames(macroArgs, len(values))
		if found != len(values) {
			warnArgMismatch(ctx, macroArgs, len(values))
		}
	}

	switch {
	case d.style == StyleSyscall:
		d.code = stripAssignment(d.code)
	case d.style == StyleAssertion && d.code == "":
		d.style = StyleLog
	}
	if d.style == StyleLog {
		d.code = ""
	}
	return d.render()
}

// warnArgMismatch reports with this file's own location rather than the
// caller's; the call site layer is what got the args wrong.
func warnArgMismatch(ctx context.Context, macroArgs string, want int) {
	_, file, line, _ := runtime.Caller(0)
	CallbackFrom(ctx).LogMessage(file + ":" + strconv.Itoa(line) +
		": failed to parse logging macro args into " + strconv.Itoa(want) +
		" names: " + macroArgs + "\n")
}

// stripAssignment drops a leading "lhs = " from syscall code so that
// `n = read(fd, buf, 10)` is reported as `read(fd, buf, 10)`. Only the
// first top-level '=' is considered; if it starts "==" nothing is stripped.
// Go's ":=" counts as an assignment.
func stripAssignment(code string) string {
	depth := 0
	quoted := false
	for i := 0; i < len(code); i++ {
		c := code[i]
		if quoted {
			switch {
			case c == '\\':
				i++
			case c == '"':
				quoted = false
			}
			continue
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case '"':
			quoted = true
		case '=':
			if depth != 0 {
				continue
			}
			if i+1 < len(code) && code[i+1] == '=' {
				return code
			}
			return code[skipSpace(code, i+1):]
		}
	}
	return code
}
