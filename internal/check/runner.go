package check

import (
	"fmt"
	"time"
)

// Reporter receives run events. Implementations must not assume any
// concurrency: the runner is synchronous and calls from a single goroutine.
type Reporter interface {
	RunStarted(suite string, total int)
	TestDone(res TestResult)
	RunFinished(res *Results)
}

// RunOptions parameterizes a suite run.
type RunOptions struct {
	// Case filters the run to a single case by name. Empty runs every case.
	// Callers validate the name beforehand via Suite.Case; an unknown name
	// here simply runs zero tests.
	Case string

	// Reporter receives per-test events. Nil keeps the console silent.
	Reporter Reporter

	// LogPath, when non-empty, is where the machine-readable log is written
	// after the run. The summary line is always the last line of the file.
	LogPath string
}

// Run executes the suite's tests in declaration order and returns their
// results. Assertion failures never produce an error; the only error source
// is writing the log file.
func (s *Suite) Run(opts RunOptions) (*Results, error) {
	results := &Results{Suite: s.name}

	total := s.Len()
	if opts.Case != "" {
		total = 0
		if c := s.Case(opts.Case); c != nil {
			total = c.Len()
		}
	}
	if opts.Reporter != nil {
		opts.Reporter.RunStarted(s.name, total)
	}

	start := time.Now()
	for _, c := range s.cases {
		if opts.Case != "" && c.name != opts.Case {
			continue
		}
		for _, entry := range c.tests {
			res := c.runTest(s.name, entry)
			results.Tests = append(results.Tests, res)
			if opts.Reporter != nil {
				opts.Reporter.TestDone(res)
			}
		}
	}
	results.Duration = time.Since(start)

	if opts.Reporter != nil {
		opts.Reporter.RunFinished(results)
	}

	if opts.LogPath != "" {
		if err := writeLog(opts.LogPath, results); err != nil {
			return results, fmt.Errorf("write log: %w", err)
		}
	}
	return results, nil
}

// runTest executes one test with the case's fixture scoped to it. The
// fixture is built immediately before the body and torn down exactly once
// after it, regardless of pass, recorded failure, FailNow abort, or panic.
func (c *Case) runTest(suiteName string, entry testEntry) TestResult {
	t := &T{name: entry.name}
	if c.setup != nil {
		t.fixture = c.setup()
	}

	errored := false
	start := time.Now()
	func() {
		defer func() {
			if c.teardown != nil {
				c.teardown(t.fixture)
			}
		}()
		defer func() {
			switch r := recover().(type) {
			case nil:
			case failNow:
				// Early abort, failure already recorded on t.
			default:
				errored = true
				t.messages = append(t.messages, fmt.Sprintf("panic: %v", r))
			}
		}()
		entry.fn(t)
	}()
	duration := time.Since(start)

	status := Passed
	switch {
	case errored:
		status = Errored
	case t.failed:
		status = Failed
	}

	return TestResult{
		Suite:    suiteName,
		Case:     c.name,
		Test:     entry.name,
		Status:   status,
		Messages: t.messages,
		Duration: duration,
	}
}
