package services

import (
	"context"
	"fmt"
	"log"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"gorm.io/gorm"
)

// Company-scoped collectors, active for HR admins and super admins. These
// filter by the caller's company rather than the reporting line.

type payrollReviewCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c payrollReviewCollector) Category() string { return models.CategoryPayrollReview }

func (c payrollReviewCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var runs []models.PayrollRun
	err := c.db.WithContext(ctx).
		Where("company_id = ? AND status IN ?",
			scope.CompanyID, []string{models.PayrollStatusDraft, models.PayrollStatusInReview}).
		Order("period_end asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&runs).Error
	if err != nil {
		log.Printf("[payrollReviewCollector] Error fetching open payroll runs: %v", err)
		return nil, fmt.Errorf("fetching open payroll runs: %w", err)
	}

	actions := make([]models.PendingAction, 0, len(runs))
	for _, run := range runs {
		actions = append(actions, payrollReviewAction(run))
	}
	return actions, nil
}

// payrollReviewAction does not derive priority from a due date: a run
// already in review is further along and gets high, a draft stays normal.
func payrollReviewAction(run models.PayrollRun) models.PendingAction {
	priority := models.PriorityNormal
	statusWord := "draft"
	if run.Status == models.PayrollStatusInReview {
		priority = models.PriorityHigh
		statusWord = "in review"
	}
	return models.PendingAction{
		ID:       models.CategoryPayrollReview + "-" + run.ID,
		Category: models.CategoryPayrollReview,
		Title:    "Payroll run needs attention",
		Description: fmt.Sprintf("Run for %s to %s is %s",
			run.PeriodStart.Format("Jan 2"), run.PeriodEnd.Format("Jan 2, 2006"), statusWord),
		Priority:   priority,
		SourceID:   run.ID,
		Link:       "/payroll/runs/" + run.ID,
		Actionable: true,
	}
}

type bulkLeaveCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c bulkLeaveCollector) Category() string { return models.CategoryLeaveApprovalBulk }

// Collect produces at most one synthetic record summarizing the
// company-wide pending-leave count instead of listing individual rows.
func (c bulkLeaveCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&models.LeaveRequest{}).
		Where("company_id = ? AND status = ?", scope.CompanyID, models.LeaveStatusPending).
		Count(&count).Error
	if err != nil {
		log.Printf("[bulkLeaveCollector] Error counting pending leave requests: %v", err)
		return nil, fmt.Errorf("counting pending leave requests: %w", err)
	}

	if count == 0 {
		return nil, nil
	}
	return []models.PendingAction{bulkLeaveAction(scope.CompanyID, int(count), c.cfg)}, nil
}

func bulkLeaveAction(companyID string, count int, cfg FeedConfig) models.PendingAction {
	priority := models.PriorityNormal
	if count > cfg.BulkLeaveHighThreshold {
		priority = models.PriorityHigh
	}
	return models.PendingAction{
		ID:          models.CategoryLeaveApprovalBulk + "-" + companyID,
		Category:    models.CategoryLeaveApprovalBulk,
		Title:       "Pending leave requests",
		Description: fmt.Sprintf("%d leave requests are awaiting a decision", count),
		Priority:    priority,
		SourceID:    companyID,
		Link:        "/leave/approvals",
		Actionable:  true,
	}
}

type supportEscalationCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c supportEscalationCollector) Category() string { return models.CategorySupportEscalation }

func (c supportEscalationCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var escalations []models.SupportEscalation
	err := c.db.WithContext(ctx).
		Where("company_id = ? AND resolved = ?", scope.CompanyID, false).
		Order("created_at asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&escalations).Error
	if err != nil {
		log.Printf("[supportEscalationCollector] Error fetching unresolved escalations: %v", err)
		return nil, fmt.Errorf("fetching unresolved escalations: %w", err)
	}

	actions := make([]models.PendingAction, 0, len(escalations))
	for _, esc := range escalations {
		actions = append(actions, supportEscalationAction(esc))
	}
	return actions, nil
}

// supportEscalationAction is always high: an escalation means a chat
// conversation already went unresolved once.
func supportEscalationAction(esc models.SupportEscalation) models.PendingAction {
	return models.PendingAction{
		ID:          models.CategorySupportEscalation + "-" + esc.ID,
		Category:    models.CategorySupportEscalation,
		Title:       "Unresolved support escalation",
		Description: esc.Subject,
		Priority:    models.PriorityHigh,
		SourceID:    esc.ID,
		Link:        "/support/escalations/" + esc.ID,
		Actionable:  true,
	}
}
