package performanceController

import (
	"strings"
	"testing"

	. "telon/internal/models"

	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func TestValidateUID(t *testing.T) {
	testCases := []struct {
		name     string
		uid      *string
		expected []string
	}{
		{
			name: "nil uid is generated later",
		},
		{
			name: "valid uppercase alphanumeric uid",
			uid:  stringPtr("OPENING2026A"),
		},
		{
			name: "mixed case uid is accepted",
			uid:  stringPtr("Opening2026"),
		},
		{
			name:     "uid over 32 characters",
			uid:      stringPtr(strings.Repeat("A", MaxUIDLength+1)),
			expected: []string{"The uid field must not be greater than 32 characters."},
		},
		{
			name:     "uid with punctuation",
			uid:      stringPtr("OPEN-2026"),
			expected: []string{"The uid field must only contain letters and numbers."},
		},
		{
			name:     "uid with spaces",
			uid:      stringPtr("OPEN 2026"),
			expected: []string{"The uid field must only contain letters and numbers."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verrs := NewValidationErrors()
			validateUID(verrs, tc.uid)
			assert.Equal(t, tc.expected, verrs["uid"])
		})
	}
}

func TestValidateLocation(t *testing.T) {
	verrs := NewValidationErrors()
	validateLocation(verrs, "Teatro Principal")
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateLocation(verrs, "  ")
	assert.Equal(t, []string{"The location field is required."}, verrs["location"])

	verrs = NewValidationErrors()
	validateLocation(verrs, strings.Repeat("é", MaxLocationLength))
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateLocation(verrs, strings.Repeat("a", MaxLocationLength+1))
	assert.Equal(
		t,
		[]string{"The location field must not be greater than 255 characters."},
		verrs["location"],
	)
}

func TestValidateComment(t *testing.T) {
	verrs := NewValidationErrors()
	validateComment(verrs, nil)
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateComment(verrs, stringPtr(strings.Repeat("ñ", MaxCommentLength)))
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateComment(verrs, stringPtr(strings.Repeat("a", MaxCommentLength+1)))
	assert.Equal(
		t,
		[]string{"The comment field must not be greater than 500 characters."},
		verrs["comment"],
	)
}
