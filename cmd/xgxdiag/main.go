// Command xgxdiag exercises the message assembly engine from the shell:
// split argument text, render descriptions, and route log lines or faults
// through the configured root callback.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
