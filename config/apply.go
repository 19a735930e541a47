package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxdiag "github.com/xgx-io/xgx-diag"
	"github.com/xgx-io/xgx-diag/console"
)

// NewCallback builds the root callback described by cfg.Sink.
func NewCallback(cfg *Config) (xgxdiag.Callback, error) {
	switch cfg.Sink.Kind {
	case SinkConsole:
		mode, err := console.ParseColorMode(cfg.Sink.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColorMode, cfg.Sink.Color)
		}
		return console.New(stream(cfg.Sink.Stream), mode, console.WithVerbose(cfg.Sink.Verbose)), nil
	case SinkZap:
		logger, err := newZapLogger(cfg.Sink)
		if err != nil {
			return nil, err
		}
		return xgxdiag.NewZapCallback(logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidSinkKind, cfg.Sink.Kind)
}

// Apply sets the process threshold and installs the configured root
// callback. It returns the previous root so callers can restore it.
func Apply(cfg *Config) (xgxdiag.Callback, error) {
	sev, err := cfg.Severity()
	if err != nil {
		return nil, err
	}
	cb, err := NewCallback(cfg)
	if err != nil {
		return nil, err
	}
	xgxdiag.SetMinSeverity(sev)
	return xgxdiag.SetRootCallback(cb), nil
}

func stream(name string) *os.File {
	if name == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}

// newZapLogger follows zap's production preset. The level is left wide
// open: the threshold is applied by the call sites, not the sink.
func newZapLogger(sc SinkConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.Sampling = nil
	zc.DisableStacktrace = true
	zc.DisableCaller = true
	if sc.Encoding == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	out := sc.Stream
	if out == "" {
		out = "stderr"
	}
	zc.OutputPaths = []string{out}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return logger, nil
}
