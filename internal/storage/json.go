package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mathlab/internal/check"
)

func statusName(st check.Status) string {
	switch st {
	case check.Passed:
		return "passed"
	case check.Failed:
		return "failed"
	case check.Errored:
		return "errored"
	}
	return "unknown"
}

// Save writes the run results to the configured JSON file.
func (s *JSONStorage) Save(results *check.Results) error {
	output := ResultsOutput{
		Meta: ResultsMeta{
			Suite:           results.Suite,
			Checks:          results.Checks(),
			Failures:        results.Failures(),
			Errors:          results.Errors(),
			Percent:         results.Percent(),
			Duration:        results.Duration.String(),
			DurationSeconds: results.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
	}
	for _, tr := range results.Tests {
		output.Tests = append(output.Tests, TestRecord{
			Case:     tr.Case,
			Test:     tr.Test,
			Status:   statusName(tr.Status),
			Messages: tr.Messages,
		})
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads a previously saved results artifact.
func (s *JSONStorage) Load() (*ResultsOutput, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output ResultsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}
