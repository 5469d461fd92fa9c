package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFeedConfig(t *testing.T) {
	cfg := DefaultFeedConfig()

	assert.Equal(t, 24*time.Hour, cfg.UrgentWithin)
	assert.Equal(t, 3*24*time.Hour, cfg.HighWithin)
	assert.Equal(t, 30*24*time.Hour, cfg.ContractLookahead)
	assert.Equal(t, 60*24*time.Hour, cfg.PermitLookahead)
	assert.Equal(t, 10, cfg.BulkLeaveHighThreshold)
	assert.Equal(t, 10, cfg.DefaultLimit)
	assert.Equal(t, 50, cfg.MaxLimit)
}

func TestLoadFeedConfigOverrides(t *testing.T) {
	t.Setenv("FEED_URGENT_WITHIN_DAYS", "2")
	t.Setenv("FEED_BULK_LEAVE_HIGH_THRESHOLD", "25")
	t.Setenv("FEED_DEFAULT_LIMIT", "20")

	cfg := LoadFeedConfig()

	assert.Equal(t, 48*time.Hour, cfg.UrgentWithin)
	assert.Equal(t, 25, cfg.BulkLeaveHighThreshold)
	assert.Equal(t, 20, cfg.DefaultLimit)
	// Untouched knobs keep their defaults.
	assert.Equal(t, 3*24*time.Hour, cfg.HighWithin)
}

func TestLoadFeedConfigIgnoresInvalid(t *testing.T) {
	t.Setenv("FEED_HIGH_WITHIN_DAYS", "three")
	t.Setenv("FEED_MAX_LIMIT", "-5")

	cfg := LoadFeedConfig()

	assert.Equal(t, 3*24*time.Hour, cfg.HighWithin)
	assert.Equal(t, 50, cfg.MaxLimit)
}
