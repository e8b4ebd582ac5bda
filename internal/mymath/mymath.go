// Package mymath is the arithmetic library under test. It is intentionally
// trivial: the harness around it is the point of the lab.
package mymath

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Multiply returns a * b.
func Multiply(a, b int) int {
	return a * b
}
