package playController

import (
	"strings"
	"testing"

	. "telon/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	testCases := []struct {
		name     string
		title    string
		expected []string
	}{
		{
			name:  "valid title",
			title: "La Casa de Bernarda Alba",
		},
		{
			name:     "empty title is required",
			title:    "",
			expected: []string{"The title field is required."},
		},
		{
			name:     "whitespace only title is required",
			title:    "   ",
			expected: []string{"The title field is required."},
		},
		{
			name:     "title over 255 characters",
			title:    strings.Repeat("a", MaxTitleLength+1),
			expected: []string{"The title field must not be greater than 255 characters."},
		},
		{
			name:  "title at exactly 255 characters",
			title: strings.Repeat("a", MaxTitleLength),
		},
		{
			name:  "accented title counts characters not bytes",
			title: strings.Repeat("á", MaxTitleLength),
		},
		{
			name:     "accented title over 255 characters",
			title:    strings.Repeat("á", MaxTitleLength+1),
			expected: []string{"The title field must not be greater than 255 characters."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verrs := NewValidationErrors()
			validateTitle(verrs, tc.title)
			assert.Equal(t, tc.expected, verrs["title"])
		})
	}
}

func TestValidateDescription(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		expected    []string
	}{
		{
			name:        "valid description",
			description: "Drama rural en tres actos.",
		},
		{
			name:        "empty description is required",
			description: "",
			expected:    []string{"The description field is required."},
		},
		{
			name:        "description over 500 characters",
			description: strings.Repeat("a", MaxDescriptionLength+1),
			expected:    []string{"The description field must not be greater than 500 characters."},
		},
		{
			name:        "accented description counts characters not bytes",
			description: strings.Repeat("ñ", MaxDescriptionLength),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verrs := NewValidationErrors()
			validateDescription(verrs, tc.description)
			assert.Equal(t, tc.expected, verrs["description"])
		})
	}
}
