// Package ui renders run output for the student runner: colored console
// reporting, a progress bar, and an interactive failure viewer.
package ui

import (
	"fmt"

	"github.com/fatih/color"

	"mathlab/internal/check"
)

// ConsoleReporter implements check.Reporter on the terminal. Verbose mode
// prints one line per test, normal mode drives a progress bar, minimal mode
// prints only the summary, and silent mode prints nothing.
type ConsoleReporter struct {
	verbosity check.Verbosity
	progress  *ProgressBar
	passed    int
	failed    int
}

// NewConsoleReporter creates a reporter at the given verbosity.
func NewConsoleReporter(verbosity check.Verbosity) *ConsoleReporter {
	return &ConsoleReporter{verbosity: verbosity}
}

// RunStarted announces the run.
func (r *ConsoleReporter) RunStarted(suite string, total int) {
	switch r.verbosity {
	case check.Verbose:
		color.Cyan("Running suite(s): %s", suite)
	case check.Normal:
		r.progress = NewProgressBar(suite, total)
	}
}

// TestDone reports a single finished test.
func (r *ConsoleReporter) TestDone(res check.TestResult) {
	if res.Status == check.Passed {
		r.passed++
	} else {
		r.failed++
	}

	switch r.verbosity {
	case check.Verbose:
		if res.Status == check.Passed {
			color.Green("✓ %s:%s", res.Case, res.Test)
		} else {
			color.Red("✗ %s:%s", res.Case, res.Test)
			for _, msg := range res.Messages {
				fmt.Printf("    %s\n", msg)
			}
		}
	case check.Normal:
		r.progress.Update(r.passed, r.failed, res.Case+":"+res.Test)
	}
}

// RunFinished prints the run summary.
func (r *ConsoleReporter) RunFinished(res *check.Results) {
	if r.verbosity == check.Silent {
		return
	}
	if r.progress != nil {
		r.progress.Finish()
	}

	fmt.Println(res.Summary())
	if res.Failures()+res.Errors() == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d test(s) failed, %d errored", res.Failures(), res.Errors())
	}
}
