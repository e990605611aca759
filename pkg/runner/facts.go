package runner

import (
	"digital.vasic.facts/pkg/fact"
	"digital.vasic.facts/pkg/logging"
)

// Facts runs a suite: it builds a fresh suite, pushes a
// handler bound to it, emits the suite header, and invokes
// body. Every fact evaluated while the handler is topmost is
// routed into the suite; failures and errors are rendered
// eagerly, successes stay silent until the summary. The
// summary is emitted and the handler popped even if body
// panics, so a panic from the suite body itself propagates to
// the caller without corrupting the handler stack.
func (s *Session) Facts(
	description string,
	body func(),
) *fact.Suite {
	suite := fact.NewSuite(description)
	if s.captureSource {
		suite.Name, _ = callSite()
	}

	handler := func(result fact.Result) {
		suite.Record(result)
		if !result.IsSuccess() && s.reporter != nil {
			s.reporter.Result(result)
		}
	}

	s.pushHandler(handler)
	s.logger.Info("suite started",
		logging.LogField("description", description),
	)
	if s.reporter != nil {
		s.reporter.Header(suite)
	}

	defer func() {
		if s.reporter != nil {
			s.reporter.Summary(suite)
		}
		s.popHandler()

		s.mu.Lock()
		s.suites = append(s.suites, suite)
		s.mu.Unlock()

		s.logger.Info("suite finished",
			logging.LogField("description", description),
			logging.IntField("facts", suite.Total()),
			logging.IntField("failed", len(suite.Failures)),
			logging.IntField("errored", len(suite.Errors)),
		)
	}()

	body()
	return suite
}

// Context runs body with label pushed onto the context stack.
// Facts evaluated inside carry the innermost label only. The
// label is popped on every exit path, including panics. An
// empty label runs body without touching the stack.
func (s *Session) Context(label string, body func()) {
	if label == "" {
		body()
		return
	}

	s.mu.Lock()
	s.contexts = append(s.contexts, label)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.contexts = s.contexts[:len(s.contexts)-1]
		s.mu.Unlock()
	}()

	body()
}

// Suites returns the suites completed so far, in completion
// order.
func (s *Session) Suites() []*fact.Suite {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*fact.Suite, len(s.suites))
	copy(out, s.suites)
	return out
}

func (s *Session) pushHandler(h Handler) {
	s.mu.Lock()
	s.handlers = append(s.handlers, h)
	s.mu.Unlock()
}

func (s *Session) popHandler() {
	s.mu.Lock()
	if n := len(s.handlers); n > 0 {
		s.handlers = s.handlers[:n-1]
	}
	s.mu.Unlock()
}
