// chain.go — context nodes: scoped interceptors in front of the current
// callback.
//
// WithContext derives a context whose callback is a node pointing at the
// callback that was current for the parent. The node lives exactly as long
// as the derived context is in use; the parent keeps resolving to the
// previous callback, so unlinking is always in reverse order of pushing.
//
//	ctx = xgxdiag.WithContext(ctx, xgxdiag.Note{File: f, Line: l, MacroArgs: "id", Values: []string{id}})
//	// failures raised with ctx now carry the note
package xgxdiag

import "context"

// Decorator is the single extension point of a context node: it may attach
// information to a failure record before the record moves on.
type Decorator interface {
	// Decorate is called with the context the node was pushed on, so any
	// diagnostics it raises reach the callback behind the node.
	Decorate(ctx context.Context, e *Exception)
}

// LogDecorator may additionally be implemented by a Decorator to rewrite
// log lines passing through its node.
type LogDecorator interface {
	DecorateLog(text string) string
}

// DecoratorFunc adapts a function to Decorator.
type DecoratorFunc func(ctx context.Context, e *Exception)

func (f DecoratorFunc) Decorate(ctx context.Context, e *Exception) { f(ctx, e) }

type nopDecorator struct{}

func (nopDecorator) Decorate(context.Context, *Exception) {}

// NoDecoration forwards everything unchanged.
var NoDecoration Decorator = nopDecorator{}

// Note attaches a log-style context note built from its arguments, tagged
// with its own file and line.
type Note struct {
	File      string
	Line      int
	MacroArgs string
	Values    []string
}

func (n Note) Decorate(ctx context.Context, e *Exception) {
	AddContext(ctx, e, n.File, n.Line, n.MacroArgs, n.Values)
}

// contextNode is one link of the chain.
type contextNode struct {
	parent context.Context
	prev   Callback
	deco   Decorator
}

// WithContext pushes a node decorating with d in front of CallbackFrom(ctx).
// A nil d behaves like NoDecoration.
func WithContext(ctx context.Context, d Decorator) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if d == nil {
		d = NoDecoration
	}
	n := &contextNode{parent: ctx, prev: CallbackFrom(ctx), deco: d}
	return context.WithValue(ctx, callbackKey{}, Callback(n))
}

func (n *contextNode) LogMessage(text string) {
	if ld, ok := n.deco.(LogDecorator); ok {
		text = ld.DecorateLog(text)
	}
	n.prev.LogMessage(text)
}

func (n *contextNode) OnRecoverableException(e *Exception) {
	n.deco.Decorate(n.parent, e)
	n.prev.OnRecoverableException(e)
}

func (n *contextNode) OnFatalException(e *Exception) {
	n.deco.Decorate(n.parent, e)
	n.prev.OnFatalException(e)
}

var _ Callback = (*contextNode)(nil)
