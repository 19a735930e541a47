package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	xgxdiag "github.com/xgx-io/xgx-diag"
)

func parseStyle(s string) (xgxdiag.Style, error) {
	switch strings.ToLower(s) {
	case "log":
		return xgxdiag.StyleLog, nil
	case "assert", "assertion":
		return xgxdiag.StyleAssertion, nil
	case "syscall":
		return xgxdiag.StyleSyscall, nil
	}
	return 0, fmt.Errorf("unknown style %q (want log, assertion or syscall)", s)
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		style string
		code  string
		errno int
		margs string
	)
	cmd := &cobra.Command{
		Use:   "render [VALUE...]",
		Short: "Print the description assembled from code, argument text and values",
		Example: `  xgxdiag render --style assertion --code 'a > b' --args 'a, b' 1 2
  xgxdiag render --style syscall --code 'n = read(fd)' --errno 9`,
		RunE: func(cmd *cobra.Command, values []string) error {
			st, err := parseStyle(style)
			if err != nil {
				return err
			}
			ctx, err := opts.context(cmd)
			if err != nil {
				return err
			}
			opts.logger.Debug("render", zap.Stringer("style", st), zap.Int("values", len(values)))
			fmt.Fprintln(cmd.OutOrStdout(), xgxdiag.Describe(ctx, st, code, errno, margs, values))
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", "log", "log, assertion or syscall")
	cmd.Flags().StringVar(&code, "code", "", "failing expression (assertion, syscall)")
	cmd.Flags().IntVar(&errno, "errno", 0, "OS error number (syscall)")
	cmd.Flags().StringVar(&margs, "args", "", "source text of the values")
	return cmd
}
