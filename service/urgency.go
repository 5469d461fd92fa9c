package services

import (
	"time"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
)

// priorityRank orders tiers for sorting: urgent first, normal last.
var priorityRank = map[string]int{
	models.PriorityUrgent: 0,
	models.PriorityHigh:   1,
	models.PriorityNormal: 2,
}

// priorityFor maps a due date to an urgency tier. No due date means no
// natural deadline, so normal. A due date at or inside the urgent window
// is urgent; past-due dates satisfy that test too. Inside the high window
// is high, anything further out is normal.
func priorityFor(due *time.Time, now time.Time, cfg FeedConfig) string {
	if due == nil {
		return models.PriorityNormal
	}
	remaining := due.Sub(now)
	switch {
	case remaining <= cfg.UrgentWithin:
		return models.PriorityUrgent
	case remaining <= cfg.HighWithin:
		return models.PriorityHigh
	default:
		return models.PriorityNormal
	}
}
