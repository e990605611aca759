// Package bank loads declarative fact banks: YAML or JSON
// files describing suites of facts to evaluate, with expected
// values given either literally or as a named built-in
// predicate.
package bank

// File is the on-disk structure of a fact bank.
type File struct {
	// Version identifies the bank format version.
	Version string `json:"version" yaml:"version"`

	// Suites holds the suite definitions in run order.
	Suites []SuiteDef `json:"suites" yaml:"suites"`
}

// SuiteDef describes one suite of facts.
type SuiteDef struct {
	// Description is the human-readable suite description,
	// shown in the suite banner.
	Description string `json:"description" yaml:"description"`

	// Context is an optional label pushed around the whole
	// suite body.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`

	// Facts holds the fact definitions in evaluation order.
	Facts []FactDef `json:"facts" yaml:"facts"`
}

// FactDef describes one fact. Either Expected holds a literal
// value compared by deep equality, or Predicate names a
// built-in predicate configured by Value and the tolerance
// fields.
type FactDef struct {
	// Expr is the assertion text shown in reports.
	Expr string `json:"expr" yaml:"expr"`

	// Context is an optional label pushed around this fact
	// only.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`

	// Actual is the observed value under test.
	Actual any `json:"actual" yaml:"actual"`

	// Expected is the literal expected value. Ignored when
	// Predicate is set.
	Expected any `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Predicate names a built-in predicate: "not", "not_nil",
	// "truthy", "falsy", "identical", "approx".
	Predicate string `json:"predicate,omitempty" yaml:"predicate,omitempty"`

	// Value is the predicate argument for "not", "identical",
	// and "approx".
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// AbsTol overrides the absolute tolerance for "approx".
	AbsTol *float64 `json:"abs_tol,omitempty" yaml:"abs_tol,omitempty"`

	// RelTol overrides the relative tolerance for "approx".
	RelTol *float64 `json:"rel_tol,omitempty" yaml:"rel_tol,omitempty"`
}
