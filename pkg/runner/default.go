package runner

import "digital.vasic.facts/pkg/fact"

// Default is the process-wide session used by the package
// level convenience functions. It is kept for ergonomic use at
// the public API boundary and is not safe for suites running
// concurrently; concurrent runs should create one Session per
// execution context.
var Default = NewSession()

// Evaluate checks an assertion on the Default session.
func Evaluate(
	expr string,
	actual, expected any,
) fact.Result {
	return Default.Evaluate(expr, actual, expected)
}

// Throws checks a panic expectation on the Default session.
func Throws(expr string, thunk func()) fact.Result {
	return Default.Throws(expr, thunk)
}

// Facts runs a suite on the Default session.
func Facts(description string, body func()) *fact.Suite {
	return Default.Facts(description, body)
}

// Context runs body inside a labeled context on the Default
// session.
func Context(label string, body func()) {
	Default.Context(label, body)
}

// Stats returns aggregate counts from the Default session.
func Stats() fact.Stats {
	return Default.Stats()
}

// ExitStatus reports the failure condition of the Default
// session.
func ExitStatus() error {
	return Default.ExitStatus()
}
