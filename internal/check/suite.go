// Package check is a small checked-testing framework: named suites of named
// test cases, per-test fixtures with guaranteed teardown, and a runner that
// reports to the console or to a machine-readable log file.
package check

// SetupFunc builds a fresh fixture value for one test invocation.
type SetupFunc func() any

// TeardownFunc releases the fixture value produced by the matching SetupFunc.
type TeardownFunc func(any)

// TestFunc is a single test body. Assertions are recorded on t.
type TestFunc func(t *T)

// Suite is a named, ordered collection of test cases.
type Suite struct {
	name  string
	cases []*Case
}

// NewSuite creates an empty suite with the given name.
func NewSuite(name string) *Suite {
	return &Suite{name: name}
}

// Name returns the suite name.
func (s *Suite) Name() string {
	return s.name
}

// AddCase appends a case to the suite.
func (s *Suite) AddCase(c *Case) {
	s.cases = append(s.cases, c)
}

// Case looks up a case by name, returning nil if the suite has no such case.
// Runners use this to validate a requested case name before executing.
func (s *Suite) Case(name string) *Case {
	for _, c := range s.cases {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Cases returns the case names in declaration order.
func (s *Suite) Cases() []string {
	names := make([]string, 0, len(s.cases))
	for _, c := range s.cases {
		names = append(names, c.name)
	}
	return names
}

// Len returns the total number of tests across all cases.
func (s *Suite) Len() int {
	n := 0
	for _, c := range s.cases {
		n += len(c.tests)
	}
	return n
}

type testEntry struct {
	name string
	fn   TestFunc
}

// Case is a named group of tests sharing an optional setup/teardown pair.
type Case struct {
	name     string
	setup    SetupFunc
	teardown TeardownFunc
	tests    []testEntry
}

// NewCase creates an empty case with the given name.
func NewCase(name string) *Case {
	return &Case{name: name}
}

// Name returns the case name.
func (c *Case) Name() string {
	return c.name
}

// Len returns the number of tests in the case.
func (c *Case) Len() int {
	return len(c.tests)
}

// SetFixture installs a setup/teardown pair. Setup runs immediately before
// each test body and its value is reachable through T.Fixture; teardown runs
// exactly once after the body, whatever the outcome.
func (c *Case) SetFixture(setup SetupFunc, teardown TeardownFunc) {
	c.setup = setup
	c.teardown = teardown
}

// AddTest appends a named test to the case.
func (c *Case) AddTest(name string, fn TestFunc) {
	c.tests = append(c.tests, testEntry{name: name, fn: fn})
}
