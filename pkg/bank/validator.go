package bank

import "fmt"

// knownPredicates names the built-in predicates a bank fact
// may reference.
var knownPredicates = map[string]bool{
	"not":       true,
	"not_nil":   true,
	"truthy":    true,
	"falsy":     true,
	"identical": true,
	"approx":    true,
}

// ValidationError represents a validation issue found in a
// bank file.
type ValidationError struct {
	Field   string
	Message string
	Suite   int // -1 if not applicable
	Fact    int // -1 if not applicable
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch {
	case e.Suite >= 0 && e.Fact >= 0:
		return fmt.Sprintf(
			"suites[%d].facts[%d].%s: %s",
			e.Suite, e.Fact, e.Field, e.Message,
		)
	case e.Suite >= 0:
		return fmt.Sprintf(
			"suites[%d].%s: %s",
			e.Suite, e.Field, e.Message,
		)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a bank structure and returns all problems
// found.
func Validate(file *File) []ValidationError {
	var errs []ValidationError

	if file.Version == "" {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: "version is required",
			Suite:   -1,
			Fact:    -1,
		})
	}

	for i, suite := range file.Suites {
		if suite.Description == "" {
			errs = append(errs, ValidationError{
				Field:   "description",
				Message: "suite description is required",
				Suite:   i,
				Fact:    -1,
			})
		}

		for j, f := range suite.Facts {
			if f.Expr == "" {
				errs = append(errs, ValidationError{
					Field:   "expr",
					Message: "fact expr is required",
					Suite:   i,
					Fact:    j,
				})
			}
			if f.Predicate != "" &&
				!knownPredicates[f.Predicate] {
				errs = append(errs, ValidationError{
					Field: "predicate",
					Message: fmt.Sprintf(
						"unknown predicate: %s",
						f.Predicate,
					),
					Suite: i,
					Fact:  j,
				})
			}
		}
	}

	return errs
}
