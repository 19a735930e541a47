package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxdiag "github.com/xgx-io/xgx-diag"
	"github.com/xgx-io/xgx-diag/config"
)

type rootOptions struct {
	configPath string
	verbose    bool
	color      string

	logger *zap.Logger
	cfg    *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "xgxdiag",
		Short:         "Assemble and route diagnostic messages",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log the tool's own steps")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "", "override sink color (auto|on|off)")

	cmd.AddCommand(newSplitCmd(), newRenderCmd(opts), newLogCmd(opts), newFailCmd(opts))
	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if o.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger = logger

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.color != "" {
		cfg.Sink.Color = o.color
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	o.cfg = cfg
	o.logger.Debug("config loaded",
		zap.String("path", o.configPath),
		zap.String("min_severity", cfg.MinSeverity),
		zap.String("sink", cfg.Sink.Kind))
	return nil
}

// context installs the configured root for the duration of one command.
// Console sinks write to the command's own streams so tests can capture
// them.
func (o *rootOptions) context(cmd *cobra.Command) (context.Context, error) {
	sev, err := o.cfg.Severity()
	if err != nil {
		return nil, err
	}
	var cb xgxdiag.Callback
	if o.cfg.Sink.Kind == config.SinkConsole {
		cb = consoleFor(cmd, o.cfg)
	} else if cb, err = config.NewCallback(o.cfg); err != nil {
		return nil, err
	}
	xgxdiag.SetMinSeverity(sev)
	return xgxdiag.WithCallback(cmd.Context(), cb), nil
}
