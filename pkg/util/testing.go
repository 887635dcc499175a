package util

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func AssertExpected(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	return assert.Equal(t, expected, got)
}

func AssertLen(t *testing.T, expected int, got interface{}) bool {
	t.Helper()
	return assert.Len(t, got, expected)
}

func AssertTrue(t *testing.T, got bool) bool {
	t.Helper()
	return assert.True(t, got)
}

func AssertFalse(t *testing.T, got bool) bool {
	t.Helper()
	return assert.False(t, got)
}

func AssertNoError(t *testing.T, got error) bool {
	t.Helper()
	return assert.NoError(t, got)
}

// AssertErrorIs checks that got wraps the sentinel error target
func AssertErrorIs(t *testing.T, target, got error) bool {
	t.Helper()
	if !errors.Is(got, target) {
		t.Errorf("error, expected: %v, got: %v\n", target, got)
		return false
	}
	return true
}

// AssertSameElements checks both slices hold the same elements, in any order
func AssertSameElements(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	return assert.ElementsMatch(t, expected, got)
}
