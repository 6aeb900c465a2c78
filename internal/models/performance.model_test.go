package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestGeneratePerformanceUID(t *testing.T) {
	uid, err := GeneratePerformanceUID()
	require.NoError(t, err)

	assert.Len(t, uid, PerformanceUIDLength)
	for _, r := range uid {
		assert.Contains(t, uidCharset, string(r))
	}
	assert.Equal(t, strings.ToUpper(uid), uid)
}

func TestGeneratePerformanceUIDVaries(t *testing.T) {
	seen := make(map[string]bool)
	for range 20 {
		uid, err := GeneratePerformanceUID()
		require.NoError(t, err)
		seen[uid] = true
	}

	// 20 draws from a 36^12 space colliding would indicate a broken generator
	assert.Greater(t, len(seen), 1)
}

func TestBeforeCreateGeneratesUID(t *testing.T) {
	p := Performance{ScheduledAt: time.Now()}
	require.NoError(t, p.BeforeCreate(nil))
	assert.Len(t, p.UID, PerformanceUIDLength)
}

func TestBeforeCreateKeepsCallerUID(t *testing.T) {
	p := Performance{UID: "OPENING2026", ScheduledAt: time.Now()}
	require.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, "OPENING2026", p.UID)
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC)
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)
	start := past.Add(15 * time.Minute)
	end := start.Add(90 * time.Minute)

	testCases := []struct {
		name        string
		performance Performance
		expected    *PerformanceStatus
	}{
		{
			name:        "scheduled in the future with no timestamps",
			performance: Performance{ScheduledAt: future},
			expected:    statusPtr(PerformanceStatusUpcoming),
		},
		{
			name: "future but already started has no status",
			performance: Performance{
				ScheduledAt: future,
				StartedAt:   timePtr(start),
			},
			expected: nil,
		},
		{
			name: "future with started and ended has no status",
			performance: Performance{
				ScheduledAt: future,
				StartedAt:   timePtr(start),
				EndedAt:     timePtr(end),
			},
			expected: nil,
		},
		{
			name: "past with started and ended at the same instant",
			performance: Performance{
				ScheduledAt: past,
				StartedAt:   timePtr(start),
				EndedAt:     timePtr(start),
			},
			expected: statusPtr(PerformanceStatusSuspended),
		},
		{
			name: "past with started and not ended",
			performance: Performance{
				ScheduledAt: past,
				StartedAt:   timePtr(start),
			},
			expected: statusPtr(PerformanceStatusRunning),
		},
		{
			name: "past with distinct started and ended",
			performance: Performance{
				ScheduledAt: past,
				StartedAt:   timePtr(start),
				EndedAt:     timePtr(end),
			},
			expected: statusPtr(PerformanceStatusCompleted),
		},
		{
			name:        "past with no timestamps has no status",
			performance: Performance{ScheduledAt: past},
			expected:    nil,
		},
		{
			name: "past ended without started has no status",
			performance: Performance{
				ScheduledAt: past,
				EndedAt:     timePtr(end),
			},
			expected: nil,
		},
		{
			name:        "scheduled exactly now is neither future nor past",
			performance: Performance{ScheduledAt: now},
			expected:    nil,
		},
		{
			name:        "zero scheduled time has no status",
			performance: Performance{},
			expected:    nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.performance.DeriveStatus(now)
			if tc.expected == nil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, *tc.expected, *result)
			}
		})
	}
}

func TestRefreshStatus(t *testing.T) {
	p := Performance{ScheduledAt: time.Now().Add(24 * time.Hour)}
	p.RefreshStatus()

	require.NotNil(t, p.Status)
	assert.Equal(t, PerformanceStatusUpcoming, *p.Status)
}
