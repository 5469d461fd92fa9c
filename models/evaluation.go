package models

import "time"

const (
	EvaluationKindSelf    = "self"
	EvaluationKindManager = "manager"

	EvaluationStatusPending   = "pending"
	EvaluationStatusSubmitted = "submitted"
)

// Evaluation is one review form inside a performance cycle. A self
// evaluation has EvaluatorID == EmployeeID; a manager evaluation is
// written by EvaluatorID about EmployeeID. CycleEndsAt is the submission
// deadline and feeds the urgency calculation.
type Evaluation struct {
	ID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID  string `gorm:"type:uuid;not null" json:"employee_id"`
	EvaluatorID string `gorm:"type:uuid;not null" json:"evaluator_id"`

	Kind        string    `gorm:"not null" json:"kind"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
	CycleName   string    `json:"cycle_name"`
	CycleEndsAt time.Time `gorm:"not null" json:"cycle_ends_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
