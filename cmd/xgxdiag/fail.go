package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	xgxdiag "github.com/xgx-io/xgx-diag"
)

func newFailCmd(opts *rootOptions) *cobra.Command {
	var (
		nature string
		code   string
		errno  int
		margs  string
		file   string
		line   int
		fatal  bool
	)
	cmd := &cobra.Command{
		Use:   "fail [VALUE...]",
		Short: "Raise a fault through the configured sink",
		Long: `Builds a failure record and delivers it as recoverable, or as fatal with
--fatal, in which case the process exits with status 2 after delivery.`,
		Example: `  xgxdiag fail --nature precondition --code 'n > 0' --args n 0
  xgxdiag fail --nature os_error --code 'fd = open(path)' --errno 2 --args path /tmp/x --fatal`,
		RunE: func(cmd *cobra.Command, values []string) error {
			n, err := xgxdiag.ParseNature(nature)
			if err != nil {
				return err
			}
			ctx, err := opts.context(cmd)
			if err != nil {
				return err
			}
			f := xgxdiag.BuildFault(ctx, file, line, n, errno, code, margs, values)
			opts.logger.Debug("fault built",
				zap.String("id", f.Exception().ID.String()),
				zap.Bool("fatal", fatal))
			if fatal {
				_ = opts.logger.Sync()
				f.Fatal(ctx)
				return nil
			}
			f.Recoverable(ctx)
			return nil
		},
	}
	cmd.Flags().StringVar(&nature, "nature", "local_bug", "precondition, local_bug, os_error, network_failure or other")
	cmd.Flags().StringVar(&code, "code", "", "failing expression")
	cmd.Flags().IntVar(&errno, "errno", 0, "OS error number (os_error)")
	cmd.Flags().StringVar(&margs, "args", "", "source text of the values")
	cmd.Flags().StringVar(&file, "file", "<cli>", "file reported as the failure site")
	cmd.Flags().IntVar(&line, "line", 0, "line reported as the failure site")
	cmd.Flags().BoolVar(&fatal, "fatal", false, "deliver as fatal and exit")
	return cmd
}
