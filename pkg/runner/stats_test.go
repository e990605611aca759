package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_CountsAcrossSuites(t *testing.T) {
	s := quiet()

	s.Evaluate("handler-free", 1, 1)
	s.Facts("first", func() {
		s.Evaluate("a", 1, 1)
		s.Evaluate("b", 1, 2)
	})
	s.Facts("second", func() {
		s.Evaluate("c", 2, 2)
	})

	stats := s.Stats()
	assert.Equal(t, 3, stats.SuccessCount)
	assert.Equal(t, 1, stats.FailureCount)
	assert.Equal(t, 0, stats.ErrorCount)
	assert.Equal(t, 4, stats.Total())
	assert.Equal(t, len(s.Results()), stats.Total())
}

func TestExitStatus_AllGreen(t *testing.T) {
	s := quiet()
	s.Evaluate("ok", 1, 1)

	assert.NoError(t, s.ExitStatus())
}

func TestExitStatus_NonSuccessful(t *testing.T) {
	s := quiet()
	s.Evaluate("ok", 1, 1)
	s.Evaluate("bad", 1, 2)
	s.Throws("no panic", func() {})

	err := s.ExitStatus()
	require.Error(t, err)

	var nse *NonSuccessfulError
	require.ErrorAs(t, err, &nse)
	assert.Equal(t, 2, nse.Count)
}

func TestNonSuccessfulError_Message(t *testing.T) {
	one := &NonSuccessfulError{Count: 1}
	assert.Equal(t, "1 non-successful fact", one.Error())

	many := &NonSuccessfulError{Count: 3}
	assert.Equal(t, "3 non-successful facts", many.Error())
}

func TestDefaultSession_MirrorsPackageFuncs(t *testing.T) {
	// Swap in a fresh default so other tests cannot interfere.
	saved := Default
	Default = quiet()
	defer func() { Default = saved }()

	Facts("via package funcs", func() {
		Context("label", func() {
			Evaluate("eq", 1, 1)
		})
		Throws("panics", func() { panic("p") })
	})

	stats := Stats()
	assert.Equal(t, 2, stats.SuccessCount)
	assert.NoError(t, ExitStatus())
}
