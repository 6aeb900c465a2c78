package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterFromFlags(t *testing.T) {
	testCases := []struct {
		name        string
		onlyTrashed bool
		withTrashed bool
		expected    TrashFilter
	}{
		{
			name:     "no flags lists active rows",
			expected: TrashNone,
		},
		{
			name:        "only_trashed lists trashed rows",
			onlyTrashed: true,
			expected:    TrashOnly,
		},
		{
			name:        "with_trashed lists all rows",
			withTrashed: true,
			expected:    TrashWith,
		},
		{
			name:        "only_trashed wins over with_trashed",
			onlyTrashed: true,
			withTrashed: true,
			expected:    TrashOnly,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FilterFromFlags(tc.onlyTrashed, tc.withTrashed))
		})
	}
}

func TestNewWiresAllRepositories(t *testing.T) {
	repos := New()

	assert.NotNil(t, repos.User)
	assert.NotNil(t, repos.Play)
	assert.NotNil(t, repos.Question)
	assert.NotNil(t, repos.QuestionOption)
	assert.NotNil(t, repos.Performance)
}
