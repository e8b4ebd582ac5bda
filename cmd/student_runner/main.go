package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"mathlab/internal/config"
	"mathlab/internal/runner"
)

var version = "dev"

// newRootCmd builds the student runner's root command. Excess positional
// arguments are rejected by Args validation before the suite is constructed.
func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "student_runner [testcase]",
		Short:   "Run the math lab test suite on the console",
		Long:    `Runs the math test suite and reports results on the console. An optional test-case name ("add" or "multiply") restricts the run to that case. The exit code reflects only argument handling, never assertion failures.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Student(cfg, args)
		},
	}
	rootCmd.Flags().BoolVarP(&cfg.Flags.Review, "review", "r", false, "Open the failure viewer when the run has failures")
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
