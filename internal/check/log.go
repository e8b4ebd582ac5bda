package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// writeLog writes the machine-readable run log: a header line, one line per
// executed test, and the summary as the final line. Grading pipelines match
// the summary against `\d+%: Checks: \d+, Failures: \d+, Errors: \d+`, so
// nothing may follow it.
func writeLog(path string, results *Results) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Running suite(s): %s\n", results.Suite)
	for _, tr := range results.Tests {
		msg := "Passed"
		if len(tr.Messages) > 0 {
			msg = strings.Join(tr.Messages, "; ")
		}
		fmt.Fprintf(&b, "%s:%s:%s: %s\n", tr.Case, tr.Test, tr.Status, msg)
	}
	b.WriteString(results.Summary())
	b.WriteString("\n")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	return nil
}
