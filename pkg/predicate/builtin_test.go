package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNot_OfValue(t *testing.T) {
	notFive := Not(5)

	assert.False(t, notFive(5))
	assert.True(t, notFive(6))
	assert.True(t, notFive("five"))
}

func TestNot_OfPredicate(t *testing.T) {
	notTruthy := Not(Predicate(Truthy))

	assert.True(t, notTruthy(false))
	assert.True(t, notTruthy(nil))
	assert.False(t, notTruthy(1))
}

func TestNotNil(t *testing.T) {
	var nilMap map[string]int
	var nilPtr *int
	n := 1

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"typed nil map", nilMap, false},
		{"typed nil pointer", nilPtr, false},
		{"pointer", &n, true},
		{"zero int", 0, true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NotNil(tt.value))
		})
	}
}

func TestTruthyFalsy(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		truthy bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero", 0, true},
		{"empty string", "", true},
		{"struct", struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.truthy, Truthy(tt.value))
			assert.Equal(t, !tt.truthy, Falsy(tt.value))
		})
	}
}

func TestIdentical(t *testing.T) {
	a := &struct{ n int }{1}
	b := &struct{ n int }{1}
	s := []int{1, 2}

	assert.True(t, Identical(a)(a))
	assert.False(t, Identical(a)(b))
	assert.True(t, Identical(s)(s))
	assert.False(t, Identical(s)([]int{1, 2}))
	assert.True(t, Identical(3)(3))
	assert.False(t, Identical(3)(4))
	assert.False(t, Identical(a)(3))
}
