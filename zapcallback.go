// zapcallback.go — root callback that delivers through a zap.Logger.
//
// This is also the default root: a console-encoded logger on stderr.
package xgxdiag

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapCallback is a root Callback writing to a zap.Logger. Fatal records are
// logged at error level and the logger is synced; exiting is left to the
// fault path.
type ZapCallback struct {
	logger *zap.Logger
}

// NewZapCallback wraps logger. A nil logger means a console logger on
// stderr.
func NewZapCallback(logger *zap.Logger) *ZapCallback {
	if logger == nil {
		logger = newStderrLogger()
	}
	return &ZapCallback{logger: logger}
}

func newStderrLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zapcore.DebugLevel)
	return zap.New(core)
}

// Logger returns the underlying logger.
func (c *ZapCallback) Logger() *zap.Logger { return c.logger }

// LogMessage logs text at the level named by its severity label. Lines
// without a recognised label (the argument mismatch warning, lines from
// foreign producers) are logged as warnings.
func (c *ZapCallback) LogMessage(text string) {
	text = strings.TrimSuffix(text, "\n")
	level := zapcore.WarnLevel
	if label, rest, ok := strings.Cut(text, ": "); ok {
		if sev, ok := SeverityOfLabel(label); ok {
			level = zapLevel(sev)
			text = rest
		}
	}
	if ce := c.logger.Check(level, text); ce != nil {
		ce.Write()
	}
}

func (c *ZapCallback) OnRecoverableException(e *Exception) {
	c.logger.Error("recoverable exception", exceptionFields(e)...)
}

func (c *ZapCallback) OnFatalException(e *Exception) {
	c.logger.Error("fatal exception", exceptionFields(e)...)
	_ = c.logger.Sync()
}

// zapLevel maps a severity onto zap. Fatal maps to error because zap's own
// fatal level exits.
func zapLevel(s Severity) zapcore.Level {
	switch s {
	case SeverityDebug:
		return zapcore.DebugLevel
	case SeverityInfo:
		return zapcore.InfoLevel
	case SeverityWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func exceptionFields(e *Exception) []zap.Field {
	fs := []zap.Field{
		zap.String("id", e.ID.String()),
		zap.Stringer("nature", e.Nature),
		zap.Stringer("durability", e.Durability),
		zap.String("file", e.File),
		zap.Int("line", e.Line),
		zap.String("description", e.Description),
	}
	if notes := e.Context(); len(notes) > 0 {
		ss := make([]string, len(notes))
		for i, n := range notes {
			ss[i] = n.String()
		}
		fs = append(fs, zap.Strings("context", ss))
	}
	if e.cause != nil {
		fs = append(fs, zap.NamedError("cause", e.cause))
	}
	return fs
}

var _ Callback = (*ZapCallback)(nil)
