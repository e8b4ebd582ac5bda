package check

import "fmt"

// failNow is the sentinel recovered by the runner when a test aborts early.
type failNow struct{}

// T records assertion outcomes for one test invocation. It satisfies
// testify's assert.TestingT and require.TestingT interfaces, so test bodies
// can use assert.Equal(t, ...) and require.Equal(t, ...) directly.
type T struct {
	name     string
	fixture  any
	failed   bool
	messages []string
}

// Name returns the test name.
func (t *T) Name() string {
	return t.name
}

// Fixture returns the value built by the case's setup for this invocation,
// or nil if the case has no fixture.
func (t *T) Fixture() any {
	return t.fixture
}

// Errorf records an assertion failure and continues the test body.
func (t *T) Errorf(format string, args ...any) {
	t.failed = true
	t.messages = append(t.messages, fmt.Sprintf(format, args...))
}

// FailNow aborts the test body. The case's teardown still runs.
func (t *T) FailNow() {
	t.failed = true
	panic(failNow{})
}

// Failed reports whether a failure has been recorded.
func (t *T) Failed() bool {
	return t.failed
}
