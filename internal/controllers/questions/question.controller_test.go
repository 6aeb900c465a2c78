package questionController

import (
	"strings"
	"testing"

	. "telon/internal/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestValidateQuestionText(t *testing.T) {
	verrs := NewValidationErrors()
	validateQuestionText(verrs, "Quien escribio esta obra?")
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateQuestionText(verrs, "  ")
	assert.Equal(t, []string{"The question text field is required."}, verrs["questionText"])
}

func TestValidateOrder(t *testing.T) {
	testCases := []struct {
		name     string
		order    *int
		required bool
		expected []string
	}{
		{
			name:  "valid order",
			order: intPtr(1),
		},
		{
			name:     "missing order when required",
			required: true,
			expected: []string{"The order field is required."},
		},
		{
			name: "missing order allowed on partial update",
		},
		{
			name:     "zero order",
			order:    intPtr(0),
			expected: []string{"The order field must be at least 1."},
		},
		{
			name:     "negative order",
			order:    intPtr(-3),
			expected: []string{"The order field must be at least 1."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verrs := NewValidationErrors()
			validateOrder(verrs, tc.order, tc.required)
			assert.Equal(t, tc.expected, verrs["order"])
		})
	}
}

func TestValidateObservations(t *testing.T) {
	verrs := NewValidationErrors()
	validateObservations(verrs, nil)
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateObservations(verrs, stringPtr(strings.Repeat("a", MaxObservationsLength)))
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateObservations(verrs, stringPtr(strings.Repeat("ó", MaxObservationsLength)))
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateObservations(verrs, stringPtr(strings.Repeat("a", MaxObservationsLength+1)))
	assert.Equal(
		t,
		[]string{"The observations field must not be greater than 500 characters."},
		verrs["observations"],
	)
}
