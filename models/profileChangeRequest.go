package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ProfileChangeStatusPending  = "pending"
	ProfileChangeStatusApproved = "approved"
	ProfileChangeStatusRejected = "rejected"
)

// ProfileChangeRequest is an employee-submitted edit to their own profile
// (bank details, address, emergency contact) that a manager must approve
// before it is applied.
type ProfileChangeRequest struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID string `gorm:"type:uuid;not null" json:"employee_id"`

	// Changes holds the requested field edits as a JSONB map of
	// field name -> new value. Opaque to the feed engine.
	Changes datatypes.JSON `json:"changes"`
	Status  string         `gorm:"not null;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
