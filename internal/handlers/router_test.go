package handlers

import (
	"testing"

	"telon/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidationSummary(t *testing.T) {
	testCases := []struct {
		name     string
		build    func() models.ValidationErrors
		expected string
	}{
		{
			name: "single message",
			build: func() models.ValidationErrors {
				verrs := models.NewValidationErrors()
				verrs.Add("title", "The title field is required.")
				return verrs
			},
			expected: "The title field is required.",
		},
		{
			name: "two messages on one field",
			build: func() models.ValidationErrors {
				verrs := models.NewValidationErrors()
				verrs.Add("uid", "The uid field must not be greater than 32 characters.")
				verrs.Add("uid", "The uid field must only contain letters and numbers.")
				return verrs
			},
			expected: "The uid field must not be greater than 32 characters. (and 1 more error)",
		},
		{
			name: "messages across fields use the first field alphabetically",
			build: func() models.ValidationErrors {
				verrs := models.NewValidationErrors()
				verrs.Add("title", "The title field is required.")
				verrs.Add("description", "The description field is required.")
				verrs.Add("order", "The order field must be at least 1.")
				return verrs
			},
			expected: "The description field is required. (and 2 more errors)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, validationSummary(tc.build()))
		})
	}
}
