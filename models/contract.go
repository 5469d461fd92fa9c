package models

import "time"

// Contract is an employment contract. EndDate is nil for permanent
// contracts; fixed-term contracts approaching EndDate surface in the
// manager's feed as an expiry reminder.
type Contract struct {
	ID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID string `gorm:"type:uuid;not null" json:"employee_id"`

	ContractType string     `gorm:"not null" json:"contract_type"`
	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`

	// DocumentURL points at the signed contract file in object storage.
	DocumentURL string `json:"document_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
