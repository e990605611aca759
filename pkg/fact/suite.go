package fact

// Suite accumulates the results of every fact evaluated while
// its handler is the active one.
type Suite struct {
	// Name is an optional short identifier, typically the
	// source file the suite was declared in.
	Name string `json:"name,omitempty"`

	// Description is the human-readable suite description.
	Description string `json:"description,omitempty"`

	// Successes holds success results in evaluation order.
	Successes []Result `json:"successes"`

	// Failures holds failure results in evaluation order.
	Failures []Result `json:"failures"`

	// Errors holds error results in evaluation order.
	Errors []Result `json:"errors"`
}

// NewSuite creates an empty suite with the given description.
func NewSuite(description string) *Suite {
	return &Suite{Description: description}
}

// Record routes a result into the matching sequence.
func (s *Suite) Record(r Result) {
	switch r.Kind {
	case KindSuccess:
		s.Successes = append(s.Successes, r)
	case KindFailure:
		s.Failures = append(s.Failures, r)
	case KindError:
		s.Errors = append(s.Errors, r)
	}
}

// Total returns the number of facts evaluated in this suite.
func (s *Suite) Total() int {
	return len(s.Successes) + len(s.Failures) + len(s.Errors)
}

// AllPassed returns true if the suite has no failures and no
// errors.
func (s *Suite) AllPassed() bool {
	return len(s.Failures) == 0 && len(s.Errors) == 0
}
