package models

import "time"

const (
	GoalStatusDraft           = "draft"
	GoalStatusPendingApproval = "pending_approval"
	GoalStatusApproved        = "approved"
	GoalStatusArchived        = "archived"
)

// Goal is a performance goal owned by one employee. Draft goals surface in
// the owner's feed; goals pending approval surface in the manager's feed.
type Goal struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID string `gorm:"type:uuid;not null" json:"employee_id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Status      string `gorm:"not null;default:draft" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
