package services

import (
	"testing"
	"time"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"github.com/stretchr/testify/assert"
)

// FixedTime is used to patch time.Now in tests.
var FixedTime = time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestPriorityForBoundaries(t *testing.T) {
	patches := gomonkey.ApplyFunc(time.Now, func() time.Time {
		return FixedTime
	})
	defer patches.Reset()

	cfg := DefaultFeedConfig()
	now := time.Now()

	tests := []struct {
		name string
		due  *time.Time
		want string
	}{
		{"no due date", nil, models.PriorityNormal},
		{"due exactly in 1 day", timePtr(now.Add(24 * time.Hour)), models.PriorityUrgent},
		{"due in 1 day and 1 second", timePtr(now.Add(24*time.Hour + time.Second)), models.PriorityHigh},
		{"due exactly in 3 days", timePtr(now.Add(3 * 24 * time.Hour)), models.PriorityHigh},
		{"due in 3 days and 1 second", timePtr(now.Add(3*24*time.Hour + time.Second)), models.PriorityNormal},
		{"due right now", timePtr(now), models.PriorityUrgent},
		{"past due", timePtr(now.Add(-48 * time.Hour)), models.PriorityUrgent},
		{"far future", timePtr(now.Add(30 * 24 * time.Hour)), models.PriorityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, priorityFor(tt.due, now, cfg))
		})
	}
}

// TestPriorityForMonotonic checks that an earlier due date is never less
// urgent than a later one.
func TestPriorityForMonotonic(t *testing.T) {
	cfg := DefaultFeedConfig()
	now := FixedTime

	offsets := []time.Duration{
		-72 * time.Hour,
		0,
		12 * time.Hour,
		24 * time.Hour,
		24*time.Hour + time.Second,
		48 * time.Hour,
		72 * time.Hour,
		72*time.Hour + time.Second,
		240 * time.Hour,
	}

	prevRank := -1
	for _, offset := range offsets {
		due := now.Add(offset)
		rank := priorityRank[priorityFor(&due, now, cfg)]
		assert.GreaterOrEqual(t, rank, prevRank,
			"priority rank regressed at offset %s", offset)
		prevRank = rank
	}
}

func TestPriorityForRespectsConfig(t *testing.T) {
	cfg := DefaultFeedConfig()
	cfg.UrgentWithin = 7 * 24 * time.Hour
	cfg.HighWithin = 14 * 24 * time.Hour
	now := FixedTime

	due := now.Add(5 * 24 * time.Hour)
	assert.Equal(t, models.PriorityUrgent, priorityFor(&due, now, cfg))

	due = now.Add(10 * 24 * time.Hour)
	assert.Equal(t, models.PriorityHigh, priorityFor(&due, now, cfg))
}
