package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	xgxdiag "github.com/xgx-io/xgx-diag"
)

func newLogCmd(opts *rootOptions) *cobra.Command {
	var (
		severity string
		margs    string
		file     string
		line     int
	)
	cmd := &cobra.Command{
		Use:     "log [VALUE...]",
		Short:   "Route a log line through the configured sink",
		Example: `  xgxdiag log --severity warning --args 'user, attempts' alice 3`,
		RunE: func(cmd *cobra.Command, values []string) error {
			sev, err := xgxdiag.ParseSeverity(severity)
			if err != nil {
				return err
			}
			ctx, err := opts.context(cmd)
			if err != nil {
				return err
			}
			if !xgxdiag.ShouldLog(sev) {
				opts.logger.Debug("suppressed by threshold",
					zap.Stringer("severity", sev),
					zap.Stringer("min", xgxdiag.MinSeverity()))
				return nil
			}
			xgxdiag.LogInternal(ctx, file, line, sev, margs, values)
			return nil
		},
	}
	cmd.Flags().StringVarP(&severity, "severity", "s", "info", "info, warning, error, fatal or debug")
	cmd.Flags().StringVar(&margs, "args", "", "source text of the values")
	cmd.Flags().StringVar(&file, "file", "<cli>", "file reported as the log site")
	cmd.Flags().IntVar(&line, "line", 0, "line reported as the log site")
	return cmd
}
