package bank

import (
	"fmt"

	"digital.vasic.facts/pkg/predicate"
	"digital.vasic.facts/pkg/runner"
)

// Run evaluates every suite of a bank on the given session, in
// file order.
func Run(session *runner.Session, file *File) {
	for _, suite := range file.Suites {
		runSuite(session, suite)
	}
}

func runSuite(session *runner.Session, suite SuiteDef) {
	session.Facts(suite.Description, func() {
		session.Context(suite.Context, func() {
			for _, f := range suite.Facts {
				runFact(session, f)
			}
		})
	})
}

func runFact(session *runner.Session, f FactDef) {
	expected, err := expectedSide(f)
	if err != nil {
		// Validation catches unknown predicates up front, so
		// this only fires for banks built in code.
		session.Check(f.Expr, func() (bool, any) {
			panic(err)
		})
		return
	}

	session.Context(f.Context, func() {
		session.Evaluate(f.Expr, f.Actual, expected)
	})
}

// expectedSide resolves a fact definition to the value or
// predicate passed to Evaluate.
func expectedSide(f FactDef) (any, error) {
	if f.Predicate == "" {
		return f.Expected, nil
	}

	switch f.Predicate {
	case "not":
		return predicate.Not(f.Value), nil
	case "not_nil":
		return predicate.Predicate(predicate.NotNil), nil
	case "truthy":
		return predicate.Predicate(predicate.Truthy), nil
	case "falsy":
		return predicate.Predicate(predicate.Falsy), nil
	case "identical":
		return predicate.Identical(f.Value), nil
	case "approx":
		var opts []predicate.ApproxOption
		if f.AbsTol != nil {
			opts = append(
				opts, predicate.WithAbsTol(*f.AbsTol),
			)
		}
		if f.RelTol != nil {
			opts = append(
				opts, predicate.WithRelTol(*f.RelTol),
			)
		}
		return predicate.Approx(f.Value, opts...), nil
	}
	return nil, fmt.Errorf(
		"unknown predicate: %s", f.Predicate,
	)
}
