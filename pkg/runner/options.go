package runner

import (
	"io"

	"digital.vasic.facts/pkg/logging"
	"digital.vasic.facts/pkg/report"
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the diagnostic logger.
func WithLogger(logger logging.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithReporter sets the reporting sink. A nil reporter
// silences all suite output.
func WithReporter(reporter Reporter) SessionOption {
	return func(s *Session) {
		s.reporter = reporter
	}
}

// WithOutput directs console reporting to the given writer.
func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) {
		s.reporter = report.NewConsole(w)
	}
}

// WithObserver registers a callback invoked for every result
// produced, regardless of which handler is active. Observers
// run after the active handler.
func WithObserver(observer Handler) SessionOption {
	return func(s *Session) {
		s.observers = append(s.observers, observer)
	}
}

// WithSourceLocation toggles best-effort capture of the
// assertion call site into result metadata.
func WithSourceLocation(enabled bool) SessionOption {
	return func(s *Session) {
		s.captureSource = enabled
	}
}

// defaultReporter builds the stdout console reporter used
// when no option overrides it.
func defaultReporter() Reporter {
	return report.NewConsole(nil)
}
