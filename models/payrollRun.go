package models

import "time"

// Payroll run lifecycle. Draft and in_review are the two states that still
// need HR attention; in_review is the later of the two and is treated as
// more pressing by the feed.
const (
	PayrollStatusDraft    = "draft"
	PayrollStatusInReview = "in_review"
	PayrollStatusApproved = "approved"
	PayrollStatusPaid     = "paid"
)

type PayrollRun struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID string `gorm:"type:uuid;not null" json:"company_id"`

	PeriodStart time.Time `gorm:"not null" json:"period_start"`
	PeriodEnd   time.Time `gorm:"not null" json:"period_end"`
	Status      string    `gorm:"not null;default:draft" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
