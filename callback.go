// callback.go — the ambient handler contract and where it lives.
//
// Every log line and every failure record produced by this package ends up
// at a Callback. Which one is decided per flow of execution: the Callback
// carried by the caller's context.Context, or the process-wide root when the
// context carries none. Goroutines that do not share a context never share
// a chain.
//
// The root is expected to do the actual delivery (write, ship, collect).
// Context nodes pushed with WithContext sit in front of it and forward.
package xgxdiag

import (
	"context"
	"sync"
	"sync/atomic"
)

// Callback receives log messages and failure records.
//
// OnRecoverableException and OnFatalException take ownership of e. A root
// implementation must not terminate the process from OnFatalException; the
// fault path does that itself once the callback returns.
type Callback interface {
	// LogMessage receives one rendered line, including its trailing newline.
	LogMessage(text string)
	OnRecoverableException(e *Exception)
	OnFatalException(e *Exception)
}

type rootSlot struct{ cb Callback }

var (
	root        atomic.Pointer[rootSlot]
	defaultRoot = sync.OnceValue(func() Callback { return NewZapCallback(nil) })
)

// RootCallback returns the process-wide root.
func RootCallback() Callback {
	if s := root.Load(); s != nil {
		return s.cb
	}
	return defaultRoot()
}

// SetRootCallback installs cb as the process-wide root and returns the
// previous one. A nil cb restores the default zap root on stderr.
func SetRootCallback(cb Callback) Callback {
	var next *rootSlot
	if cb != nil {
		next = &rootSlot{cb: cb}
	}
	if prev := root.Swap(next); prev != nil {
		return prev.cb
	}
	return defaultRoot()
}

type callbackKey struct{}

// WithCallback returns a context whose descendants deliver to cb instead of
// the process root. Context nodes pushed on ctx before this call are not
// consulted by the returned context.
func WithCallback(ctx context.Context, cb Callback) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callbackKey{}, cb)
}

// CallbackFrom returns the current handler for ctx: the innermost context
// node, else the callback installed with WithCallback, else the root.
func CallbackFrom(ctx context.Context) Callback {
	if ctx != nil {
		if cb, ok := ctx.Value(callbackKey{}).(Callback); ok && cb != nil {
			return cb
		}
	}
	return RootCallback()
}
