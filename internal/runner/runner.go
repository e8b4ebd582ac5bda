// Package runner holds the shared logic of the student and grader binaries:
// positional-argument handling, test-case validation, and suite execution.
package runner

import (
	"fmt"

	"mathlab/internal/check"
	"mathlab/internal/config"
	"mathlab/internal/mathsuite"
	"mathlab/internal/storage"
	"mathlab/internal/ui"
)

// ExitError carries the process exit code for a CLI failure. The mains map
// it after cobra has printed the usage and error text.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// unknownCase builds the exit-code-2 error for a test-case name the suite
// does not contain.
func unknownCase(name string) error {
	return &ExitError{
		Code: 2,
		Err:  fmt.Errorf("`%s' is not a test case", name),
	}
}

// Student runs the math suite on the console. args are the positional CLI
// arguments: an optional test-case filter. Assertion failures do not produce
// an error; the exit code stays 0.
func Student(cfg *config.Config, args []string) error {
	var caseName string
	if len(args) > 0 {
		caseName = args[0]
	}

	s := mathsuite.New()
	if caseName != "" && s.Case(caseName) == nil {
		return unknownCase(caseName)
	}

	results, err := s.Run(check.RunOptions{
		Case:     caseName,
		Reporter: ui.NewConsoleReporter(cfg.Verbosity),
	})
	if err != nil {
		return err
	}

	if cfg.Flags.Review {
		if failed := results.Failed(); len(failed) > 0 {
			return ui.NewFailureViewer().View(failed)
		}
	}
	return nil
}

// Grader runs the math suite silently, writing results to a log file. args
// are the positional CLI arguments: an optional test-case filter and an
// optional log file path. The console stays quiet so graded code cannot
// forge its own success output; only the log artifact is trusted.
func Grader(cfg *config.Config, args []string) error {
	var caseName string
	logFile := cfg.LogFile
	if len(args) > 0 {
		caseName = args[0]
	}
	// A per-invocation log file lets independent grader processes run
	// concurrently without colliding on the default path.
	if len(args) > 1 {
		logFile = args[1]
	}

	s := mathsuite.New()
	if caseName != "" && s.Case(caseName) == nil {
		return unknownCase(caseName)
	}

	results, err := s.Run(check.RunOptions{
		Case:    caseName,
		LogPath: logFile,
	})
	if err != nil {
		return err
	}

	if cfg.Flags.JSONFile != "" {
		st := storage.NewJSONStorage(cfg.Flags.JSONFile)
		if err := st.Save(results); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
	}
	return nil
}
