// join.go — batches of failures, as reported by Collector.Err.
//
// A batch behaves like errors.Join for Error() and Unwrap() []error. Nested
// batches are flattened when joined, and "%+v" prints every member in its
// own verbose form under a "[i/n]" header.
package xgxdiag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type batch struct {
	errs []error // non-nil, never a *batch
}

func (b *batch) Error() string {
	var sb strings.Builder
	for i, e := range b.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (b *batch) Unwrap() []error { return b.errs }

// Len reports how many failures the batch holds.
func (b *batch) Len() int { return len(b.errs) }

func (b *batch) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if !s.Flag('+') {
			_, _ = io.WriteString(s, b.Error())
			return
		}
		total := strconv.Itoa(len(b.errs))
		for i, e := range b.errs {
			if i > 0 {
				_, _ = io.WriteString(s, "\n")
			}
			_, _ = io.WriteString(s, "["+strconv.Itoa(i+1)+"/"+total+"] ")
			_, _ = fmt.Fprintf(s, "%+v", e)
		}
	case 's':
		_, _ = io.WriteString(s, b.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", b.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*xgxdiag.batch=%s)", verb, b.Error())
	}
}

// Join collects the non-nil errs into one error: nil for none, the error
// itself for one. Members of joined batches are spliced in, so the result
// is always one level deep.
func Join(errs ...error) error {
	out := make([]error, 0, len(errs))
	for _, e := range errs {
		switch e := e.(type) {
		case nil:
		case *batch:
			out = append(out, e.errs...)
		default:
			out = append(out, e)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return &batch{errs: out}
}
