// Package config loads the runtime settings of xgx-diag: the log threshold
// and which root callback to install.
package config

import (
	"fmt"
	"os"
	"strings"

	xgxdiag "github.com/xgx-io/xgx-diag"
	"github.com/xgx-io/xgx-diag/console"
)

// Sink kinds.
const (
	SinkConsole = "console"
	SinkZap     = "zap"
)

// Environment overrides, applied after the file.
const (
	EnvMinSeverity = "XGXDIAG_MIN_SEVERITY"
	EnvSink        = "XGXDIAG_SINK"
)

// Config is the file layout (yaml or toml).
type Config struct {
	MinSeverity string     `yaml:"min_severity" toml:"min_severity"`
	Sink        SinkConfig `yaml:"sink" toml:"sink"`
}

// SinkConfig selects and tunes the root callback.
type SinkConfig struct {
	Kind     string `yaml:"kind" toml:"kind"`         // console, zap
	Color    string `yaml:"color" toml:"color"`       // auto, on, off (console)
	Verbose  bool   `yaml:"verbose" toml:"verbose"`   // multi-line exceptions (console)
	Encoding string `yaml:"encoding" toml:"encoding"` // console, json (zap)
	Stream   string `yaml:"stream" toml:"stream"`     // stderr, stdout
}

// Default returns the built-in settings: warnings and above, coloured
// console output on stderr when it is a terminal.
func Default() *Config {
	return &Config{
		MinSeverity: xgxdiag.SeverityWarning.String(),
		Sink: SinkConfig{
			Kind:     SinkConsole,
			Color:    string(console.ColorAuto),
			Encoding: "console",
			Stream:   "stderr",
		},
	}
}

// Severity returns the parsed threshold.
func (c *Config) Severity() (xgxdiag.Severity, error) {
	s, err := xgxdiag.ParseSeverity(c.MinSeverity)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, c.MinSeverity)
	}
	return s, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := c.Severity(); err != nil {
		return err
	}
	switch c.Sink.Kind {
	case SinkConsole, SinkZap:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSinkKind, c.Sink.Kind)
	}
	if _, err := console.ParseColorMode(c.Sink.Color); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.Sink.Color)
	}
	switch c.Sink.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, c.Sink.Encoding)
	}
	switch c.Sink.Stream {
	case "", "stderr", "stdout":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStream, c.Sink.Stream)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvMinSeverity)); v != "" {
		c.MinSeverity = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSink)); v != "" {
		c.Sink.Kind = v
	}
}
