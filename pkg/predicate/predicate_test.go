package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_ValueEquality(t *testing.T) {
	tests := []struct {
		name     string
		actual   any
		expected any
		ok       bool
	}{
		{"equal ints", 4, 4, true},
		{"unequal ints", 4, 5, false},
		{"equal strings", "go", "go", true},
		{"equal slices", []int{1, 2}, []int{1, 2}, true},
		{"unequal slices", []int{1, 2}, []int{1}, false},
		{"nil vs nil", nil, nil, true},
		{"nil vs value", nil, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reported := Check(tt.actual, tt.expected)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.actual, reported)
		})
	}
}

func TestCheck_PredicateDispatch(t *testing.T) {
	isEven := Predicate(func(v any) bool {
		n, ok := v.(int)
		return ok && n%2 == 0
	})

	ok, reported := Check(4, isEven)
	assert.True(t, ok)
	assert.Equal(t, 4, reported)

	ok, reported = Check(5, isEven)
	assert.False(t, ok)
	assert.Equal(t, 5, reported)
}

func TestCheck_BareFuncDispatch(t *testing.T) {
	positive := func(v any) bool {
		n, ok := v.(int)
		return ok && n > 0
	}

	ok, _ := Check(3, positive)
	assert.True(t, ok)

	ok, _ = Check(-3, positive)
	assert.False(t, ok)
}
