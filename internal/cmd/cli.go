package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pursue-app/pursue-tools/internal/logging"
)

// AddLogLevelFlag registers --log-level on root and returns a function
// that builds the logger it selects. Without the flag the level comes
// from LOG_LEVEL, then fallback.
func AddLogLevelFlag(root *cobra.Command, fallback string) func() *logging.Logger {
	level := root.PersistentFlags().String("log-level", "",
		fmt.Sprintf("Log level: debug, info, warn or error (default $LOG_LEVEL or %s)", fallback))

	return func() *logging.Logger {
		if *level != "" {
			return logging.NewLoggerTo(root.ErrOrStderr(), *level)
		}
		return logging.NewLoggerTo(root.ErrOrStderr(), logging.LevelFromEnv(fallback))
	}
}

// Main executes root. A failure is printed to standard error as-is and
// exits with status 1.
func Main(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}
