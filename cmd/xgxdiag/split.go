package main

import (
	"fmt"

	"github.com/spf13/cobra"

	xgxdiag "github.com/xgx-io/xgx-diag"
)

func newSplitCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:     "split TEXT",
		Short:   "Split argument source text into value names",
		Example: `  xgxdiag split --count 2 'f(x, y), "a,b"'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative")
			}
			names, found := xgxdiag.SplitArgNames(args[0], count)
			out := cmd.OutOrStdout()
			for i, n := range names {
				fmt.Fprintf(out, "%d\t%q\n", i, n)
			}
			if found != count {
				fmt.Fprintf(cmd.ErrOrStderr(), "found %d names, expected %d\n", found, count)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of names expected")
	return cmd
}
