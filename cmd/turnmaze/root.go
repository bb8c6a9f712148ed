package main

import (
	"fmt"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"
	"github.com/tevino/abool"
)

var logStarted = abool.New()

type rootFlags struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "turnmaze",
		Short:         "Cheapest routes through mazes where turning costs extra",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return startLogging(flags.logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warning",
		"log level: trace, debug, info, warning, error or critical")

	cmd.AddCommand(newSolveCmd(), newGenerateCmd())
	return cmd
}

// startLogging starts the logger once per process and applies level.
func startLogging(level string) error {
	severity := log.ParseLevel(level)
	if severity == 0 {
		return fmt.Errorf("invalid log level %q", level)
	}
	if logStarted.SetToIf(false, true) {
		if err := log.Start(); err != nil {
			logStarted.UnSet()
			return fmt.Errorf("failed to start logging: %w", err)
		}
	}
	log.SetLogLevel(severity)
	return nil
}

// stopLogging flushes and stops the logger if it was started.
func stopLogging() {
	if logStarted.SetToIf(true, false) {
		log.Shutdown()
	}
}
