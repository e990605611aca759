package fact

// Stats aggregates result counts across an entire session,
// independent of suite boundaries.
type Stats struct {
	// SuccessCount is the number of success results.
	SuccessCount int `json:"success_count"`

	// FailureCount is the number of failure results.
	FailureCount int `json:"failure_count"`

	// ErrorCount is the number of error results.
	ErrorCount int `json:"error_count"`
}

// CountResults builds Stats by scanning a result sequence once.
func CountResults(results []Result) Stats {
	var s Stats
	for _, r := range results {
		switch r.Kind {
		case KindSuccess:
			s.SuccessCount++
		case KindFailure:
			s.FailureCount++
		case KindError:
			s.ErrorCount++
		}
	}
	return s
}

// Total returns the number of results counted.
func (s Stats) Total() int {
	return s.SuccessCount + s.FailureCount + s.ErrorCount
}

// NonSuccessful returns the combined failure and error count.
// A non-zero value means the process should exit abnormally.
func (s Stats) NonSuccessful() int {
	return s.FailureCount + s.ErrorCount
}
