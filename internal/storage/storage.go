// Package storage persists run results as a machine-readable JSON artifact
// for grading pipelines that want more than the plain-text log.
package storage

import "mathlab/internal/check"

// Storage persists and loads the results of a suite run.
type Storage interface {
	Save(results *check.Results) error
	Load() (*ResultsOutput, error)
}

// ResultsMeta summarizes one run.
type ResultsMeta struct {
	Suite           string  `json:"suite"`
	Checks          int     `json:"checks"`
	Failures        int     `json:"failures"`
	Errors          int     `json:"errors"`
	Percent         int     `json:"percent"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// TestRecord is one executed test in the artifact.
type TestRecord struct {
	Case     string   `json:"case"`
	Test     string   `json:"test"`
	Status   string   `json:"status"`
	Messages []string `json:"messages,omitempty"`
}

// ResultsOutput is the complete artifact structure.
type ResultsOutput struct {
	Meta  ResultsMeta  `json:"meta"`
	Tests []TestRecord `json:"tests"`
}

// JSONStorage stores results in a JSON file at a fixed path.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that reads and writes the given path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}
