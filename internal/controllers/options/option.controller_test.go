package optionController

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

func TestValidateOptionText(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name: "valid text",
			text: "Federico Garcia Lorca",
		},
		{
			name:     "empty text is required",
			text:     "",
			expected: []string{"The text field is required."},
		},
		{
			name:     "text over 255 characters",
			text:     strings.Repeat("a", MaxOptionTextLength+1),
			expected: []string{"The text field must not be greater than 255 characters."},
		},
		{
			name: "accented text counts characters not bytes",
			text: strings.Repeat("í", MaxOptionTextLength),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verrs := NewValidationErrors()
			validateOptionText(verrs, tc.text)
			assert.Equal(t, tc.expected, verrs["text"])
		})
	}
}

func TestValidateOptionOrder(t *testing.T) {
	verrs := NewValidationErrors()
	validateOptionOrder(verrs, nil, true)
	assert.Equal(t, []string{"The order field is required."}, verrs["order"])

	verrs = NewValidationErrors()
	validateOptionOrder(verrs, nil, false)
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateOptionOrder(verrs, intPtr(0), true)
	assert.Equal(t, []string{"The order field must be at least 1."}, verrs["order"])

	verrs = NewValidationErrors()
	validateOptionOrder(verrs, intPtr(2), true)
	assert.False(t, verrs.Any())
}

func TestValidateNotes(t *testing.T) {
	verrs := NewValidationErrors()
	validateNotes(verrs, nil)
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateNotes(verrs, stringPtr(strings.Repeat("ñ", MaxNotesLength)))
	assert.False(t, verrs.Any())

	verrs = NewValidationErrors()
	validateNotes(verrs, stringPtr(strings.Repeat("a", MaxNotesLength+1)))
	assert.Equal(
		t,
		[]string{"The notes field must not be greater than 500 characters."},
		verrs["notes"],
	)
}
