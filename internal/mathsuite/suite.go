// Package mathsuite declares the "math" test suite run by the student and
// grader binaries.
package mathsuite

import (
	"github.com/stretchr/testify/assert"

	"mathlab/internal/check"
	"mathlab/internal/mymath"
)

// SuiteName is the name of the suite built by New.
const SuiteName = "math"

// ImportantNumber is the scratch value each multiply test receives through
// its fixture.
const ImportantNumber = 37

// New builds the math suite: an "add" case with no fixture and a "multiply"
// case whose tests each get a fresh *int fixture. Construction cannot fail.
func New() *check.Suite {
	s := check.NewSuite(SuiteName)
	s.AddCase(addCase())
	s.AddCase(multiplyCase())
	return s
}

func addCase() *check.Case {
	c := check.NewCase("add")
	c.AddTest("test_add_positive", func(t *check.T) {
		assert.Equal(t, 7, mymath.Add(4, 3))
	})
	c.AddTest("test_add_zero", func(t *check.T) {
		assert.Equal(t, 100, mymath.Add(100, 0))
	})
	c.AddTest("test_add_negative", func(t *check.T) {
		assert.Equal(t, -51, mymath.Add(-1, -50))
	})
	return c
}

func multiplyCase() *check.Case {
	c := check.NewCase("multiply")
	c.SetFixture(
		func() any {
			n := new(int)
			*n = ImportantNumber
			return n
		},
		func(fx any) {
			// Zero the scratch value so a stale pointer is obvious.
			if n, ok := fx.(*int); ok {
				*n = 0
			}
		},
	)
	c.AddTest("test_multiply_positive", func(t *check.T) {
		assert.Equal(t, 12, mymath.Multiply(4, 3))
	})
	c.AddTest("test_multiply_zero", func(t *check.T) {
		assert.Equal(t, 0, mymath.Multiply(7, 0))
	})
	c.AddTest("test_multiply_negative", func(t *check.T) {
		assert.Equal(t, -300, mymath.Multiply(10, -30))
	})
	return c
}
