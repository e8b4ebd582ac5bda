package check

import (
	"fmt"
	"strings"
	"time"
)

// Status is the outcome of one executed test.
type Status int

const (
	// Passed means the test body completed without recording a failure.
	Passed Status = iota
	// Failed means at least one assertion failure was recorded.
	Failed
	// Errored means the test body panicked.
	Errored
)

// String returns the one-letter log code for the status (P/F/E).
func (st Status) String() string {
	switch st {
	case Passed:
		return "P"
	case Failed:
		return "F"
	case Errored:
		return "E"
	}
	return "?"
}

// Verbosity controls how much the console reporter prints.
type Verbosity int

const (
	Silent Verbosity = iota
	Minimal
	Normal
	Verbose
)

// ParseVerbosity parses a verbosity name (silent, minimal, normal, verbose).
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return Silent, nil
	case "minimal":
		return Minimal, nil
	case "", "normal":
		return Normal, nil
	case "verbose":
		return Verbose, nil
	}
	return Normal, fmt.Errorf("unknown verbosity %q", s)
}

// TestResult is the recorded outcome of a single test.
type TestResult struct {
	Suite    string
	Case     string
	Test     string
	Status   Status
	Messages []string
	Duration time.Duration
}

// Results holds the outcomes of one suite run, in execution order.
type Results struct {
	Suite    string
	Tests    []TestResult
	Duration time.Duration
}

// Checks returns the number of executed tests.
func (r *Results) Checks() int {
	return len(r.Tests)
}

// Failures returns the number of tests with recorded assertion failures.
func (r *Results) Failures() int {
	return r.count(Failed)
}

// Errors returns the number of tests that panicked.
func (r *Results) Errors() int {
	return r.count(Errored)
}

// Passed returns the number of passing tests.
func (r *Results) Passed() int {
	return r.count(Passed)
}

// Percent returns the passing percentage, truncated to an integer.
// An empty run counts as 100%.
func (r *Results) Percent() int {
	if len(r.Tests) == 0 {
		return 100
	}
	return 100 * r.Passed() / len(r.Tests)
}

// Failed returns the results of all non-passing tests.
func (r *Results) Failed() []TestResult {
	var failed []TestResult
	for _, tr := range r.Tests {
		if tr.Status != Passed {
			failed = append(failed, tr)
		}
	}
	return failed
}

func (r *Results) count(st Status) int {
	n := 0
	for _, tr := range r.Tests {
		if tr.Status == st {
			n++
		}
	}
	return n
}

// Summary returns the one-line run summary, e.g.
// "100%: Checks: 6, Failures: 0, Errors: 0".
func (r *Results) Summary() string {
	return fmt.Sprintf("%d%%: Checks: %d, Failures: %d, Errors: %d",
		r.Percent(), r.Checks(), r.Failures(), r.Errors())
}
