// Package fact defines the result model for the facts
// framework: the three-way outcome of a single assertion
// evaluation, the suite that collects outcomes, and the
// aggregate statistics used for exit status.
package fact

// Kind constants for assertion evaluation outcomes.
const (
	// KindSuccess means the assertion evaluated cleanly and
	// held.
	KindSuccess = "success"

	// KindFailure means the assertion evaluated cleanly but
	// did not hold.
	KindFailure = "failure"

	// KindError means evaluating the assertion itself
	// panicked; the panic was caught at the dispatch boundary.
	KindError = "error"
)

// Meta carries diagnostic metadata attached to a Result at
// evaluation time.
type Meta struct {
	// Context is the innermost context label active when the
	// assertion was evaluated, or empty if no context was
	// open.
	Context string `json:"context,omitempty"`

	// File is the best-effort source file of the call site.
	File string `json:"file,omitempty"`

	// Line is the best-effort source line of the call site.
	Line int `json:"line,omitempty"`
}

// Result captures the outcome of evaluating a single fact. It
// is immutable after construction and handed by value to the
// active handler and the session record.
type Result struct {
	// Kind is one of the Kind* constants.
	Kind string `json:"kind"`

	// Expr is the caller-supplied text describing the
	// assertion expression.
	Expr string `json:"expr"`

	// Value is the actual value observed. For KindError
	// results it holds the recovered panic value's rendering.
	Value any `json:"value,omitempty"`

	// Err is the error message for KindError results.
	Err string `json:"error,omitempty"`

	// Trace is the goroutine stack captured when the
	// evaluation panicked. Empty for other kinds.
	Trace string `json:"trace,omitempty"`

	// Meta holds context and source-location metadata.
	Meta Meta `json:"meta"`
}

// NewSuccess creates a success result.
func NewSuccess(expr string, value any, meta Meta) Result {
	return Result{
		Kind:  KindSuccess,
		Expr:  expr,
		Value: value,
		Meta:  meta,
	}
}

// NewFailure creates a failure result carrying the observed
// value.
func NewFailure(expr string, value any, meta Meta) Result {
	return Result{
		Kind:  KindFailure,
		Expr:  expr,
		Value: value,
		Meta:  meta,
	}
}

// NewError creates an error result from a recovered panic
// value and its stack trace.
func NewError(
	expr string,
	err string,
	trace string,
	meta Meta,
) Result {
	return Result{
		Kind:  KindError,
		Expr:  expr,
		Err:   err,
		Trace: trace,
		Meta:  meta,
	}
}

// IsSuccess returns true for KindSuccess results.
func (r Result) IsSuccess() bool {
	return r.Kind == KindSuccess
}

// IsFailure returns true for KindFailure results.
func (r Result) IsFailure() bool {
	return r.Kind == KindFailure
}

// IsError returns true for KindError results.
func (r Result) IsError() bool {
	return r.Kind == KindError
}
