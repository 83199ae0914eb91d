// Package errors formats command failures for the terminal and mirrors them
// into the log before exiting.
package errors

import (
	"fmt"
	"os"

	"wellspring/internal/logger"
)

// Format renders an error with the "Error: " prefix used on stderr. A nil
// error renders as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error, prints it to stderr, and exits with code 1. A nil
// error is a no-op.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
