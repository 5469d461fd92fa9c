package models

import "time"

// Priority tiers for a pending action, derived from the due date (or forced
// by a collector for states like an in-review payroll run).
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityNormal = "normal"
)

// Pending action categories. Each maps to exactly one collector.
const (
	CategoryGoalDraft          = "goal-draft"
	CategorySelfEvaluation     = "self-evaluation-pending"
	CategoryOnboardingTask     = "onboarding-task"
	CategoryOneOnOne           = "one-on-one-scheduled"
	CategoryLeaveApproval      = "leave-approval"
	CategoryProfileChange      = "profile-change-approval"
	CategoryManagerEvaluation  = "manager-evaluation-pending"
	CategoryGoalApproval       = "goal-approval-pending"
	CategoryContractExpiring   = "contract-expiring"
	CategoryWorkPermitExpiring = "work-permit-expiring"
	CategoryPayrollReview      = "payroll-review"
	CategoryLeaveApprovalBulk  = "leave-approval-bulk"
	CategorySupportEscalation  = "support-escalation"
)

// PendingAction is the normalized unit every collector produces and the
// feed returns. It has no table of its own: records are materialized fresh
// on every request and discarded after the response is written. The ID is
// "<category>-<source record id>" so provenance stays traceable and a
// double-collected source record would collapse to one entry.
type PendingAction struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	SourceID    string     `json:"source_id"`
	Link        string     `json:"link"`

	// Actionable is true when the feed should offer a direct call to
	// action (approve, submit, complete) and false for purely
	// informational reminders such as an expiring contract.
	Actionable bool `json:"actionable"`
}
