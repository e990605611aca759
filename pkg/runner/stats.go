package runner

import (
	"fmt"

	"digital.vasic.facts/pkg/fact"
)

// NonSuccessfulError is returned by ExitStatus when the
// session recorded failures or errors. It is the only intended
// caller-visible signal for "tests failed", distinct from a
// malfunction of the harness itself.
type NonSuccessfulError struct {
	// Count is the combined failure and error count.
	Count int
}

// Error implements the error interface.
func (e *NonSuccessfulError) Error() string {
	if e.Count == 1 {
		return "1 non-successful fact"
	}
	return fmt.Sprintf("%d non-successful facts", e.Count)
}

// Stats scans the session record once and returns aggregate
// counts across every suite and every handler-free
// evaluation. The counts always sum to the number of results
// recorded; a mismatch is a defect in the harness and panics.
func (s *Session) Stats() fact.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := fact.CountResults(s.results)
	if stats.Total() != len(s.results) {
		panic(fmt.Sprintf(
			"result record corrupted: %d counted, %d recorded",
			stats.Total(), len(s.results),
		))
	}
	return stats
}

// ExitStatus returns nil when every recorded fact succeeded,
// and a *NonSuccessfulError otherwise. Callers typically map
// a non-nil return to a non-zero process exit code.
func (s *Session) ExitStatus() error {
	stats := s.Stats()
	if n := stats.NonSuccessful(); n > 0 {
		return &NonSuccessfulError{Count: n}
	}
	return nil
}

// Results returns a copy of the append-only session record in
// evaluation order.
func (s *Session) Results() []fact.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]fact.Result, len(s.results))
	copy(out, s.results)
	return out
}
