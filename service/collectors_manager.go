package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"gorm.io/gorm"
)

// Manager-scoped collectors: records belonging to the caller's direct
// reports, plus manager-track evaluations where the caller is the
// evaluator. Active for managers, HR admins and super admins.

type leaveApprovalCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c leaveApprovalCollector) Category() string { return models.CategoryLeaveApproval }

func (c leaveApprovalCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var requests []models.LeaveRequest
	err := c.db.WithContext(ctx).
		Where("status = ? AND employee_id IN (?)",
			models.LeaveStatusPending, directReportIDs(c.db, scope.EmployeeID)).
		Order("start_date asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&requests).Error
	if err != nil {
		log.Printf("[leaveApprovalCollector] Error fetching pending leave requests: %v", err)
		return nil, fmt.Errorf("fetching pending leave requests: %w", err)
	}

	now := time.Now()
	actions := make([]models.PendingAction, 0, len(requests))
	for _, lr := range requests {
		actions = append(actions, leaveApprovalAction(lr, employeeName(c.db, lr.EmployeeID), now, c.cfg))
	}
	return actions, nil
}

func leaveApprovalAction(lr models.LeaveRequest, requester string, now time.Time, cfg FeedConfig) models.PendingAction {
	due := lr.StartDate
	days := int(lr.EndDate.Sub(lr.StartDate).Hours()/24) + 1
	return models.PendingAction{
		ID:       models.CategoryLeaveApproval + "-" + lr.ID,
		Category: models.CategoryLeaveApproval,
		Title:    "Leave request from " + requester,
		Description: fmt.Sprintf("%s, %s to %s (%d days)",
			lr.LeaveType, lr.StartDate.Format("Jan 2"), lr.EndDate.Format("Jan 2, 2006"), days),
		Priority:   priorityFor(&due, now, cfg),
		DueDate:    &due,
		SourceID:   lr.ID,
		Link:       "/leave/requests/" + lr.ID,
		Actionable: true,
	}
}

type profileChangeCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c profileChangeCollector) Category() string { return models.CategoryProfileChange }

func (c profileChangeCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var changes []models.ProfileChangeRequest
	err := c.db.WithContext(ctx).
		Where("status = ? AND employee_id IN (?)",
			models.ProfileChangeStatusPending, directReportIDs(c.db, scope.EmployeeID)).
		Order("created_at asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&changes).Error
	if err != nil {
		log.Printf("[profileChangeCollector] Error fetching profile change requests: %v", err)
		return nil, fmt.Errorf("fetching profile change requests: %w", err)
	}

	actions := make([]models.PendingAction, 0, len(changes))
	for _, pc := range changes {
		actions = append(actions, profileChangeAction(pc, employeeName(c.db, pc.EmployeeID)))
	}
	return actions, nil
}

func profileChangeAction(pc models.ProfileChangeRequest, requester string) models.PendingAction {
	return models.PendingAction{
		ID:          models.CategoryProfileChange + "-" + pc.ID,
		Category:    models.CategoryProfileChange,
		Title:       "Profile change from " + requester,
		Description: "Requested profile changes are awaiting your approval",
		Priority:    models.PriorityNormal,
		SourceID:    pc.ID,
		Link:        "/profile-changes/" + pc.ID,
		Actionable:  true,
	}
}

type managerEvaluationCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c managerEvaluationCollector) Category() string { return models.CategoryManagerEvaluation }

// Collect is scoped to the caller as evaluator rather than through the
// direct-report subquery: the evaluation rows already carry the evaluator.
func (c managerEvaluationCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var evals []models.Evaluation
	err := c.db.WithContext(ctx).
		Where("evaluator_id = ? AND kind = ? AND status = ?",
			scope.EmployeeID, models.EvaluationKindManager, models.EvaluationStatusPending).
		Order("cycle_ends_at asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&evals).Error
	if err != nil {
		log.Printf("[managerEvaluationCollector] Error fetching manager evaluations: %v", err)
		return nil, fmt.Errorf("fetching manager evaluations: %w", err)
	}

	now := time.Now()
	actions := make([]models.PendingAction, 0, len(evals))
	for _, ev := range evals {
		actions = append(actions, managerEvaluationAction(ev, employeeName(c.db, ev.EmployeeID), now, c.cfg))
	}
	return actions, nil
}

func managerEvaluationAction(ev models.Evaluation, subject string, now time.Time, cfg FeedConfig) models.PendingAction {
	due := ev.CycleEndsAt
	return models.PendingAction{
		ID:          models.CategoryManagerEvaluation + "-" + ev.ID,
		Category:    models.CategoryManagerEvaluation,
		Title:       "Evaluate " + subject,
		Description: fmt.Sprintf("%s closes on %s", ev.CycleName, due.Format("Jan 2, 2006")),
		Priority:    priorityFor(&due, now, cfg),
		DueDate:     &due,
		SourceID:    ev.ID,
		Link:        "/evaluations/" + ev.ID,
		Actionable:  true,
	}
}

type goalApprovalCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c goalApprovalCollector) Category() string { return models.CategoryGoalApproval }

func (c goalApprovalCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var goals []models.Goal
	err := c.db.WithContext(ctx).
		Where("status = ? AND employee_id IN (?)",
			models.GoalStatusPendingApproval, directReportIDs(c.db, scope.EmployeeID)).
		Order("updated_at asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&goals).Error
	if err != nil {
		log.Printf("[goalApprovalCollector] Error fetching goals pending approval: %v", err)
		return nil, fmt.Errorf("fetching goals pending approval: %w", err)
	}

	actions := make([]models.PendingAction, 0, len(goals))
	for _, g := range goals {
		actions = append(actions, goalApprovalAction(g, employeeName(c.db, g.EmployeeID)))
	}
	return actions, nil
}

func goalApprovalAction(g models.Goal, owner string) models.PendingAction {
	return models.PendingAction{
		ID:          models.CategoryGoalApproval + "-" + g.ID,
		Category:    models.CategoryGoalApproval,
		Title:       "Goal approval for " + owner,
		Description: fmt.Sprintf("Goal %q is waiting for your approval", g.Title),
		Priority:    models.PriorityNormal,
		SourceID:    g.ID,
		Link:        "/goals/" + g.ID,
		Actionable:  true,
	}
}

type contractExpiryCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c contractExpiryCollector) Category() string { return models.CategoryContractExpiring }

// Collect flags direct-report contracts ending inside the lookahead
// window. Informational only, so not actionable.
func (c contractExpiryCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	now := time.Now()
	horizon := now.Add(c.cfg.ContractLookahead)

	var contracts []models.Contract
	err := c.db.WithContext(ctx).
		Where("end_date IS NOT NULL AND end_date BETWEEN ? AND ? AND employee_id IN (?)",
			now, horizon, directReportIDs(c.db, scope.EmployeeID)).
		Order("end_date asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&contracts).Error
	if err != nil {
		log.Printf("[contractExpiryCollector] Error fetching expiring contracts: %v", err)
		return nil, fmt.Errorf("fetching expiring contracts: %w", err)
	}

	actions := make([]models.PendingAction, 0, len(contracts))
	for _, ct := range contracts {
		actions = append(actions, contractExpiryAction(ct, employeeName(c.db, ct.EmployeeID), now, c.cfg))
	}
	return actions, nil
}

func contractExpiryAction(ct models.Contract, holder string, now time.Time, cfg FeedConfig) models.PendingAction {
	due := *ct.EndDate
	daysLeft := int(due.Sub(now).Hours() / 24)
	return models.PendingAction{
		ID:          models.CategoryContractExpiring + "-" + ct.ID,
		Category:    models.CategoryContractExpiring,
		Title:       "Contract expiring for " + holder,
		Description: fmt.Sprintf("%s contract ends in %d days (%s)", ct.ContractType, daysLeft, due.Format("Jan 2, 2006")),
		Priority:    priorityFor(&due, now, cfg),
		DueDate:     &due,
		SourceID:    ct.ID,
		Link:        "/contracts/" + ct.ID,
		Actionable:  false,
	}
}

type workPermitExpiryCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c workPermitExpiryCollector) Category() string { return models.CategoryWorkPermitExpiring }

func (c workPermitExpiryCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	now := time.Now()
	horizon := now.Add(c.cfg.PermitLookahead)

	var permits []models.WorkPermit
	err := c.db.WithContext(ctx).
		Where("expires_at BETWEEN ? AND ? AND employee_id IN (?)",
			now, horizon, directReportIDs(c.db, scope.EmployeeID)).
		Order("expires_at asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&permits).Error
	if err != nil {
		log.Printf("[workPermitExpiryCollector] Error fetching expiring work permits: %v", err)
		return nil, fmt.Errorf("fetching expiring work permits: %w", err)
	}

	actions := make([]models.PendingAction, 0, len(permits))
	for _, wp := range permits {
		actions = append(actions, workPermitExpiryAction(wp, employeeName(c.db, wp.EmployeeID), now, c.cfg))
	}
	return actions, nil
}

func workPermitExpiryAction(wp models.WorkPermit, holder string, now time.Time, cfg FeedConfig) models.PendingAction {
	due := wp.ExpiresAt
	daysLeft := int(due.Sub(now).Hours() / 24)
	return models.PendingAction{
		ID:          models.CategoryWorkPermitExpiring + "-" + wp.ID,
		Category:    models.CategoryWorkPermitExpiring,
		Title:       "Work permit expiring for " + holder,
		Description: fmt.Sprintf("%s permit expires in %d days (%s)", wp.Country, daysLeft, due.Format("Jan 2, 2006")),
		Priority:    priorityFor(&due, now, cfg),
		DueDate:     &due,
		SourceID:    wp.ID,
		Link:        "/work-permits/" + wp.ID,
		Actionable:  false,
	}
}
