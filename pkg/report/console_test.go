package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.facts/pkg/fact"
)

func greenSuite(n int) *fact.Suite {
	suite := fact.NewSuite("all green")
	for i := 0; i < n; i++ {
		suite.Record(fact.NewSuccess("ok", i, fact.Meta{}))
	}
	return suite
}

func TestConsole_Header(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	suite := fact.NewSuite("my suite")
	suite.Name = "demo.go"
	c.Header(suite)

	out := buf.String()
	assert.Contains(t, out, "my suite")
	assert.Contains(t, out, "demo.go")
}

func TestConsole_Header_EmptyDescription(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Header(fact.NewSuite(""))

	assert.Contains(t, buf.String(), "facts")
}

func TestConsole_Result_Failure(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Result(fact.NewFailure(
		"x equals y", 42,
		fact.Meta{Context: "numbers", File: "a.go", Line: 3},
	))

	out := buf.String()
	assert.Contains(t, out, "failed:")
	assert.Contains(t, out, "x equals y")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "context: numbers")
	assert.Contains(t, out, "at a.go:3")
}

func TestConsole_Result_Error(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Result(fact.NewError(
		"boom", "index out of range", "stack", fact.Meta{},
	))

	out := buf.String()
	assert.Contains(t, out, "errored:")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "index out of range")
}

func TestConsole_Result_SuccessIsSilent(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Result(fact.NewSuccess("quiet", 1, fact.Meta{}))

	assert.Empty(t, buf.String())
}

func TestConsole_Summary_AllGreen(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  string
	}{
		{"singular", 1, "1 fact verified."},
		{"plural", 3, "3 facts verified."},
		{"zero", 0, "0 facts verified."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewConsole(&buf)

			c.Summary(greenSuite(tt.count))

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestConsole_Summary_Breakdown(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	suite := fact.NewSuite("mixed")
	suite.Record(fact.NewSuccess("s", nil, fact.Meta{}))
	suite.Record(fact.NewSuccess("s2", nil, fact.Meta{}))
	suite.Record(fact.NewFailure("f", nil, fact.Meta{}))
	suite.Record(fact.NewError("e", "x", "", fact.Meta{}))

	c.Summary(suite)

	out := buf.String()
	assert.Contains(t, out, "2 facts verified.")
	assert.Contains(t, out, "1 fact failed.")
	assert.Contains(t, out, "1 fact errored.")
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 fact", Pluralize(1, "fact"))
	assert.Equal(t, "0 facts", Pluralize(0, "fact"))
	assert.Equal(t, "2 facts", Pluralize(2, "fact"))
}
