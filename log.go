package xgxdiag

import (
	"context"
	"strconv"
)

// LogInternal renders "<severity>: <file>:<line>: <description>\n" and
// hands it to CallbackFrom(ctx). It does not consult the threshold.
func LogInternal(ctx context.Context, file string, line int, sev Severity, macroArgs string, values []string) {
	CallbackFrom(ctx).LogMessage(sev.String() + ": " + file + ":" + strconv.Itoa(line) + ": " +
		describe(ctx, StyleLog, "", "", macroArgs, values) + "\n")
}
