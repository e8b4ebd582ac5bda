package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"mathlab/internal/config"
	"mathlab/internal/runner"
)

var version = "dev"

// newRootCmd builds the grader runner's root command. Excess positional
// arguments are rejected by Args validation before the suite is constructed.
func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "grader_runner [testcase [logfile]]",
		Short:   "Run the math lab test suite silently for grading",
		Long:    `Runs the math test suite with a silent console, writing machine-readable results to a log file (default tests.log). An optional test-case name restricts the run; an optional log file path lets concurrent grader processes avoid colliding on the default.`,
		Version: version,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Grader(cfg, args)
		},
	}
	rootCmd.Flags().StringVar(&cfg.Flags.JSONFile, "json", "", "Also write a JSON results artifact to this path")
	return rootCmd
}

func main() {
	cfg := config.Load()

	if err := newRootCmd(cfg).Execute(); err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
