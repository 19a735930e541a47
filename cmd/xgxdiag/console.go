package main

import (
	"github.com/spf13/cobra"

	xgxdiag "github.com/xgx-io/xgx-diag"
	"github.com/xgx-io/xgx-diag/config"
	"github.com/xgx-io/xgx-diag/console"
)

func consoleFor(cmd *cobra.Command, cfg *config.Config) xgxdiag.Callback {
	mode, err := console.ParseColorMode(cfg.Sink.Color)
	if err != nil {
		mode = console.ColorAuto
	}
	w := cmd.ErrOrStderr()
	if cfg.Sink.Stream == "stdout" {
		w = cmd.OutOrStdout()
	}
	return console.New(w, mode, console.WithVerbose(cfg.Sink.Verbose))
}
