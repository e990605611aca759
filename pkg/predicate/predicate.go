// Package predicate provides the expected-side evaluation
// logic for fact assertions. An expected value is either a
// concrete value compared by deep equality, or a Predicate
// function that decides the outcome itself. The package also
// ships the built-in predicate library (Not, Truthy, Approx,
// and friends).
package predicate

import "reflect"

// Predicate is a one-argument function used as the expected
// side of an assertion instead of a literal value.
type Predicate func(value any) bool

// Check evaluates an assertion's expected side against the
// actual value. If expected is a Predicate (or a bare
// func(any) bool), the predicate decides the outcome;
// otherwise deep value equality is used. The reported value is
// always the actual value, so failure output shows what was
// observed rather than what was expected.
func Check(actual, expected any) (bool, any) {
	switch p := expected.(type) {
	case Predicate:
		return p(actual), actual
	case func(any) bool:
		return p(actual), actual
	}
	return reflect.DeepEqual(expected, actual), actual
}

// asPredicate converts a value to a Predicate if it is one.
func asPredicate(v any) (Predicate, bool) {
	switch p := v.(type) {
	case Predicate:
		return p, true
	case func(any) bool:
		return Predicate(p), true
	}
	return nil, false
}
