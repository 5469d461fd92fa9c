package models

import "time"

type WorkPermit struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID string `gorm:"type:uuid;not null" json:"employee_id"`

	Country    string    `gorm:"not null" json:"country"`
	PermitType string    `json:"permit_type"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`

	DocumentURL string `json:"document_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
