package models

import "time"

type OnboardingTask struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID string `gorm:"type:uuid;not null" json:"employee_id"`

	Title  string `gorm:"not null" json:"title"`
	Status string `gorm:"not null;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	OnboardingStatusPending   = "pending"
	OnboardingStatusCompleted = "completed"
)
