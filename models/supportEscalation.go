package models

import "time"

// SupportEscalation is a chat conversation an employee escalated to HR.
type SupportEscalation struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID  string `gorm:"type:uuid;not null" json:"company_id"`
	RaisedByID string `gorm:"type:uuid;not null" json:"raised_by_id"`

	Subject  string `gorm:"not null" json:"subject"`
	Resolved bool   `gorm:"not null;default:false" json:"resolved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
