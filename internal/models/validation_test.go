package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorsAdd(t *testing.T) {
	verrs := NewValidationErrors()
	assert.False(t, verrs.Any())

	verrs.Add("title", "The title field is required.")
	verrs.Add("title", "The title may not be greater than 255 characters.")
	verrs.Add("order", "The order has already been taken.")

	assert.True(t, verrs.Any())
	assert.Len(t, verrs["title"], 2)
	assert.Len(t, verrs["order"], 1)
}

func TestValidationErrorsError(t *testing.T) {
	verrs := NewValidationErrors()
	verrs.Add("title", "The title field is required.")
	verrs.Add("order", "The order must be at least 1.")

	// field names are sorted so the message is stable
	assert.Equal(t, "validation failed: order, title", verrs.Error())
}

func TestAsValidationErrors(t *testing.T) {
	verrs := NewValidationErrors()
	verrs.Add("uid", "The uid has already been taken.")

	unwrapped, ok := AsValidationErrors(verrs)
	require.True(t, ok)
	assert.Equal(t, verrs, unwrapped)

	wrapped := fmt.Errorf("creating performance: %w", verrs)
	unwrapped, ok = AsValidationErrors(wrapped)
	require.True(t, ok)
	assert.Equal(t, verrs, unwrapped)

	_, ok = AsValidationErrors(errors.New("plain error"))
	assert.False(t, ok)
}
