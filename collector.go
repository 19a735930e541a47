// collector.go — in-memory root callback.
//
// Collector records everything it receives. It is meant for tests and for
// batch tools that report all failures at the end of a run; it never writes
// anywhere and is safe for concurrent use.
package xgxdiag

import "sync"

type Collector struct {
	mu          sync.Mutex
	messages    []string
	recoverable []*Exception
	fatal       []*Exception
}

func NewCollector() *Collector { return &Collector{} }

func (c *Collector) LogMessage(text string) {
	c.mu.Lock()
	c.messages = append(c.messages, text)
	c.mu.Unlock()
}

func (c *Collector) OnRecoverableException(e *Exception) {
	c.mu.Lock()
	c.recoverable = append(c.recoverable, e)
	c.mu.Unlock()
}

func (c *Collector) OnFatalException(e *Exception) {
	c.mu.Lock()
	c.fatal = append(c.fatal, e)
	c.mu.Unlock()
}

// Messages returns the log lines received so far.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// Recoverable returns the recoverable records received so far.
func (c *Collector) Recoverable() []*Exception {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Exception(nil), c.recoverable...)
}

// Fatal returns the fatal records received so far.
func (c *Collector) Fatal() []*Exception {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Exception(nil), c.fatal...)
}

// Err joins every record received (recoverable first, then fatal), or
// returns nil if there were none.
func (c *Collector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := make([]error, 0, len(c.recoverable)+len(c.fatal))
	for _, e := range c.recoverable {
		errs = append(errs, e)
	}
	for _, e := range c.fatal {
		errs = append(errs, e)
	}
	return Join(errs...)
}

// Reset forgets everything recorded.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.messages, c.recoverable, c.fatal = nil, nil, nil
	c.mu.Unlock()
}

var _ Callback = (*Collector)(nil)
