package services

import (
	"fmt"
	"log"
	"os"
	"time"
)

// FeedConfig carries the tuning knobs of the pending-action feed. Every
// threshold that used to be a literal in the collectors lives here so a
// deployment can adjust them and tests can pin them.
type FeedConfig struct {
	// UrgentWithin and HighWithin bound the due-date distance for the
	// urgent and high tiers. Anything further out is normal.
	UrgentWithin time.Duration
	HighWithin   time.Duration

	// Expiry lookahead windows for the informational reminders.
	ContractLookahead time.Duration
	PermitLookahead   time.Duration

	// BulkLeaveHighThreshold is the company-wide pending-leave count above
	// which the summary record is raised to high.
	BulkLeaveHighThreshold int

	// PerCollectorCap bounds how many rows a single collector may return.
	PerCollectorCap int

	// DefaultLimit is the feed size used when the caller sends no limit or
	// an invalid one; MaxLimit is the largest limit honored as-is.
	DefaultLimit int
	MaxLimit     int
}

func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		UrgentWithin:           24 * time.Hour,
		HighWithin:             3 * 24 * time.Hour,
		ContractLookahead:      30 * 24 * time.Hour,
		PermitLookahead:        60 * 24 * time.Hour,
		BulkLeaveHighThreshold: 10,
		PerCollectorCap:        5,
		DefaultLimit:           10,
		MaxLimit:               50,
	}
}

// LoadFeedConfig starts from the defaults and applies any FEED_* overrides
// found in the environment. Day-valued knobs are whole numbers of days.
func LoadFeedConfig() FeedConfig {
	cfg := DefaultFeedConfig()

	if d, ok := envDays("FEED_URGENT_WITHIN_DAYS"); ok {
		cfg.UrgentWithin = d
	}
	if d, ok := envDays("FEED_HIGH_WITHIN_DAYS"); ok {
		cfg.HighWithin = d
	}
	if d, ok := envDays("FEED_CONTRACT_LOOKAHEAD_DAYS"); ok {
		cfg.ContractLookahead = d
	}
	if d, ok := envDays("FEED_PERMIT_LOOKAHEAD_DAYS"); ok {
		cfg.PermitLookahead = d
	}
	if n, ok := envInt("FEED_BULK_LEAVE_HIGH_THRESHOLD"); ok {
		cfg.BulkLeaveHighThreshold = n
	}
	if n, ok := envInt("FEED_PER_COLLECTOR_CAP"); ok {
		cfg.PerCollectorCap = n
	}
	if n, ok := envInt("FEED_DEFAULT_LIMIT"); ok {
		cfg.DefaultLimit = n
	}
	if n, ok := envInt("FEED_MAX_LIMIT"); ok {
		cfg.MaxLimit = n
	}

	return cfg
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(raw, "%d", &n); err != nil || n <= 0 {
		log.Printf("[LoadFeedConfig] Ignoring invalid %s=%q", key, raw)
		return 0, false
	}
	return n, true
}

func envDays(key string) (time.Duration, bool) {
	n, ok := envInt(key)
	if !ok {
		return 0, false
	}
	return time.Duration(n) * 24 * time.Hour, true
}
