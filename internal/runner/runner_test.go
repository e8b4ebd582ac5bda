package runner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathlab/internal/check"
	"mathlab/internal/config"
	"mathlab/internal/storage"
)

func silentConfig() *config.Config {
	cfg := config.New()
	cfg.Verbosity = check.Silent
	return cfg
}

func TestGrader_WritesLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "tests.log")
	cfg := silentConfig()
	cfg.LogFile = logPath

	require.NoError(t, Grader(cfg, nil))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	// Header, six tests, summary.
	assert.Len(t, lines, 8)
	assert.Equal(t, "Running suite(s): math", lines[0])
	assert.Equal(t, "100%: Checks: 6, Failures: 0, Errors: 0", lines[len(lines)-1])
}

func TestGrader_LogfileArgument(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "worker-2.log")
	cfg := silentConfig()

	require.NoError(t, Grader(cfg, []string{"add", logPath}))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	// Header, three add tests, summary.
	assert.Len(t, lines, 5)
	assert.Equal(t, "100%: Checks: 3, Failures: 0, Errors: 0", lines[len(lines)-1])
	for _, line := range lines[1 : len(lines)-1] {
		assert.True(t, strings.HasPrefix(line, "add:"), "unexpected log line %q", line)
	}
}

func TestGrader_UnknownCase(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "tests.log")
	cfg := silentConfig()
	cfg.LogFile = logPath

	err := Grader(cfg, []string{"bogus"})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, err.Error(), "bogus")

	// The suite must not have been executed.
	_, statErr := os.Stat(logPath)
	assert.True(t, os.IsNotExist(statErr), "no log should be written for an unknown case")
}

func TestGrader_JSONArtifact(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "tests.log")
	jsonPath := filepath.Join(dir, "results.json")
	cfg := silentConfig()
	cfg.Flags.JSONFile = jsonPath

	require.NoError(t, Grader(cfg, []string{"multiply", logPath}))

	output, err := storage.NewJSONStorage(jsonPath).Load()
	require.NoError(t, err)
	assert.Equal(t, "math", output.Meta.Suite)
	assert.Equal(t, 3, output.Meta.Checks)
	assert.Equal(t, 0, output.Meta.Failures)
	assert.Equal(t, 100, output.Meta.Percent)
	require.Len(t, output.Tests, 3)
	for _, rec := range output.Tests {
		assert.Equal(t, "multiply", rec.Case)
		assert.Equal(t, "passed", rec.Status)
	}
}

func TestGrader_Idempotent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	cfg := silentConfig()

	require.NoError(t, Grader(cfg, []string{"add", first}))
	require.NoError(t, Grader(cfg, []string{"add", second}))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestStudent_RunsClean(t *testing.T) {
	cfg := silentConfig()

	assert.NoError(t, Student(cfg, nil))
	assert.NoError(t, Student(cfg, []string{"add"}))
	assert.NoError(t, Student(cfg, []string{"multiply"}))
}

func TestStudent_UnknownCase(t *testing.T) {
	err := Student(silentConfig(), []string{"bogus"})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, err.Error(), "`bogus' is not a test case")
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ExitError{Code: 2, Err: inner}

	assert.Equal(t, "inner", err.Error())
	assert.True(t, errors.Is(err, inner))
}
