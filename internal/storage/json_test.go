package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathlab/internal/check"
)

func sampleResults() *check.Results {
	return &check.Results{
		Suite: "math",
		Tests: []check.TestResult{
			{Suite: "math", Case: "add", Test: "test_add_positive", Status: check.Passed},
			{Suite: "math", Case: "multiply", Test: "test_multiply_zero", Status: check.Failed,
				Messages: []string{"expected 0, got 7"}},
		},
		Duration: 120 * time.Millisecond,
	}
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	st := NewJSONStorage(path)

	require.NoError(t, st.Save(sampleResults()))

	output, err := st.Load()
	require.NoError(t, err)

	assert.Equal(t, "math", output.Meta.Suite)
	assert.Equal(t, 2, output.Meta.Checks)
	assert.Equal(t, 1, output.Meta.Failures)
	assert.Equal(t, 0, output.Meta.Errors)
	assert.Equal(t, 50, output.Meta.Percent)
	assert.NotEmpty(t, output.Meta.Timestamp)

	require.Len(t, output.Tests, 2)
	assert.Equal(t, "passed", output.Tests[0].Status)
	assert.Equal(t, "failed", output.Tests[1].Status)
	assert.Equal(t, []string{"expected 0, got 7"}, output.Tests[1].Messages)
}

func TestJSONStorage_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "results.json")
	st := NewJSONStorage(path)

	require.NoError(t, st.Save(sampleResults()))

	_, err := st.Load()
	assert.NoError(t, err)
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := NewJSONStorage(filepath.Join(t.TempDir(), "absent.json"))

	_, err := st.Load()
	assert.Error(t, err)
}
