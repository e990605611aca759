// Package runner provides the fact evaluation engine: the
// session object holding the context stack, the handler stack,
// and the append-only record of every result produced, plus
// the suite lifecycle that routes results to the active suite.
package runner

import (
	"fmt"
	"runtime/debug"
	"sync"

	"digital.vasic.facts/pkg/fact"
	"digital.vasic.facts/pkg/logging"
	"digital.vasic.facts/pkg/predicate"
)

// Handler consumes every result produced while it is the
// active (topmost) handler.
type Handler func(result fact.Result)

// Reporter is the sink for suite headers, eagerly rendered
// failures and errors, and suite summaries.
type Reporter interface {
	// Header emits the suite banner before the body runs.
	Header(suite *fact.Suite)

	// Result renders a single failure or error as it occurs.
	Result(result fact.Result)

	// Summary emits the suite summary after the body ran.
	Summary(suite *fact.Suite)
}

// Session is a run context for fact evaluation. All state is
// owned by the session; independent test runs should use
// independent sessions. A session serializes its own state
// mutations but assumes a single logical thread of test
// execution, matching the sequential ordering guarantee for
// results.
type Session struct {
	mu            sync.Mutex
	contexts      []string
	handlers      []Handler
	results       []fact.Result
	suites        []*fact.Suite
	observers     []Handler
	logger        logging.Logger
	reporter      Reporter
	captureSource bool
}

// NewSession creates a session with the supplied options. By
// default results are reported to stdout and diagnostic
// logging is discarded.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		logger:        logging.NullLogger{},
		reporter:      defaultReporter(),
		captureSource: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check evaluates a thunk inside the failure boundary and
// records the outcome. A (true, v) return yields a success, a
// (false, v) return yields a failure carrying v, and a panic
// during the thunk yields an error result carrying the panic
// value and its stack trace. The panic path is only reachable
// from the thunk itself. The result is handed to the topmost
// handler, if any, and unconditionally appended to the
// session record.
func (s *Session) Check(
	expr string,
	thunk func() (bool, any),
) fact.Result {
	meta := s.meta()
	result := runThunk(expr, thunk, meta)

	s.logger.Debug("fact evaluated",
		logging.LogField("expr", expr),
		logging.LogField("kind", result.Kind),
	)

	s.dispatch(result)
	return result
}

// runThunk converts a thunk invocation into a result. The
// recover boundary covers only the thunk call; result
// construction cannot reach the error path.
func runThunk(
	expr string,
	thunk func() (bool, any),
	meta fact.Meta,
) (result fact.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = fact.NewError(
				expr,
				fmt.Sprintf("%v", r),
				string(debug.Stack()),
				meta,
			)
		}
	}()

	ok, value := thunk()
	if ok {
		return fact.NewSuccess(expr, value, meta)
	}
	return fact.NewFailure(expr, value, meta)
}

// Evaluate checks an assertion: if expected is a predicate it
// decides the outcome, otherwise actual and expected compare
// by deep equality. The reported value is always actual.
func (s *Session) Evaluate(
	expr string,
	actual, expected any,
) fact.Result {
	return s.Check(expr, func() (bool, any) {
		return predicate.Check(actual, expected)
	})
}

// Throws checks an assertion expected to panic. A thunk that
// panics yields a success reporting "error"; a thunk that
// completes normally yields a failure reporting "no error".
func (s *Session) Throws(
	expr string,
	thunk func(),
) fact.Result {
	return s.Check(expr, func() (ok bool, reported any) {
		defer func() {
			if recover() != nil {
				ok = true
				reported = "error"
			}
		}()
		thunk()
		return false, "no error"
	})
}

// dispatch hands the result to the topmost handler, then
// appends it to the session record. Evaluating with an empty
// handler stack is legal and only affects the record.
func (s *Session) dispatch(result fact.Result) {
	s.mu.Lock()
	var top Handler
	if n := len(s.handlers); n > 0 {
		top = s.handlers[n-1]
	}
	observers := s.observers
	s.mu.Unlock()

	if top != nil {
		top(result)
	}
	for _, observe := range observers {
		observe(result)
	}

	s.mu.Lock()
	s.results = append(s.results, result)
	s.mu.Unlock()
}

// meta snapshots the innermost context label and, when
// enabled, the best-effort caller location.
func (s *Session) meta() fact.Meta {
	s.mu.Lock()
	meta := fact.Meta{}
	if n := len(s.contexts); n > 0 {
		meta.Context = s.contexts[n-1]
	}
	s.mu.Unlock()

	if s.captureSource {
		meta.File, meta.Line = callSite()
	}
	return meta
}
