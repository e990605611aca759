package runner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.facts/pkg/fact"
	"digital.vasic.facts/pkg/predicate"
)

func TestFacts_MixedOutcomes(t *testing.T) {
	s := quiet()
	boom := predicate.Predicate(func(any) bool {
		panic("kaboom")
	})

	suite := s.Facts("mixed", func() {
		s.Evaluate("equal", 1, 1)
		s.Evaluate("unequal", 1, 2)
		s.Evaluate("raises", 1, boom)
	})

	assert.Len(t, suite.Successes, 1)
	assert.Len(t, suite.Failures, 1)
	assert.Len(t, suite.Errors, 1)
	assert.Equal(t, 3, suite.Total())

	stats := s.Stats()
	assert.Equal(t, 1, stats.SuccessCount)
	assert.Equal(t, 1, stats.FailureCount)
	assert.Equal(t, 1, stats.ErrorCount)
}

func TestFacts_SuiteInvariant(t *testing.T) {
	s := quiet()

	suite := s.Facts("invariant", func() {
		s.Evaluate("a", 1, 1)
		s.Evaluate("b", 2, 2)
		s.Evaluate("c", 3, 4)
	})

	assert.Equal(t, 3, suite.Total(),
		"suite holds exactly the facts evaluated under it")
	assert.Equal(t, 3, s.Stats().Total())
}

func TestFacts_PanicInBodyStillPops(t *testing.T) {
	s := quiet()

	require.Panics(t, func() {
		s.Facts("broken body", func() {
			s.Evaluate("before", 1, 1)
			panic("suite body broke")
		})
	})

	// The handler stack must be clean for the next suite.
	suite := s.Facts("next", func() {
		s.Evaluate("after", 2, 2)
	})
	assert.Equal(t, 1, suite.Total())

	// The earlier suite kept its recorded fact.
	suites := s.Suites()
	require.Len(t, suites, 2)
	assert.Equal(t, 1, suites[0].Total())
}

func TestFacts_NestedSuitesRouteToInnermost(t *testing.T) {
	s := quiet()
	var inner *fact.Suite

	outer := s.Facts("outer", func() {
		s.Evaluate("outer fact", 1, 1)
		inner = s.Facts("inner", func() {
			s.Evaluate("inner fact", 2, 2)
		})
		s.Evaluate("outer again", 3, 3)
	})

	assert.Equal(t, 2, outer.Total())
	assert.Equal(t, 1, inner.Total())
}

func TestContext_InnermostLabelOnly(t *testing.T) {
	s := quiet()
	var r fact.Result

	s.Context("outer", func() {
		s.Context("inner", func() {
			r = s.Evaluate("nested", 1, 1)
		})
	})

	assert.Equal(t, "inner", r.Meta.Context,
		"only the innermost label is surfaced")
}

func TestContext_PopsAfterBody(t *testing.T) {
	s := quiet()

	s.Context("scoped", func() {
		s.Evaluate("inside", 1, 1)
	})
	r := s.Evaluate("outside", 2, 2)

	assert.Empty(t, r.Meta.Context)
}

func TestContext_PopsOnPanic(t *testing.T) {
	s := quiet()

	require.Panics(t, func() {
		s.Context("leaky", func() {
			panic("body broke")
		})
	})

	r := s.Evaluate("after panic", 1, 1)
	assert.Empty(t, r.Meta.Context,
		"label must not leak after a panic")
}

func TestContext_EmptyLabelSkipsStack(t *testing.T) {
	s := quiet()
	var r fact.Result

	s.Context("", func() {
		r = s.Evaluate("unlabeled", 1, 1)
	})

	assert.Empty(t, r.Meta.Context)
}

func TestFacts_EagerFailureOutput(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(
		WithOutput(&buf),
		WithSourceLocation(false),
	)

	s.Facts("eager", func() {
		s.Evaluate("good", 1, 1)
		before := buf.String()
		assert.NotContains(t, before, "good",
			"successes are silent until the summary")

		s.Evaluate("bad", 1, 2)
		after := buf.String()
		assert.Contains(t, after, "bad",
			"failures render as they occur")
	})

	assert.Contains(t, buf.String(), "1 fact failed.")
}
