package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"gorm.io/gorm"
)

// Self-scoped collectors: records where the caller is the employee or a
// meeting participant. Active for every role.

type goalDraftCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c goalDraftCollector) Category() string { return models.CategoryGoalDraft }

func (c goalDraftCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var goals []models.Goal
	err := c.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", scope.EmployeeID, models.GoalStatusDraft).
		Order("created_at asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&goals).Error
	if err != nil {
		log.Printf("[goalDraftCollector] Error fetching draft goals: %v", err)
		return nil, fmt.Errorf("fetching draft goals: %w", err)
	}

	actions := make([]models.PendingAction, 0, len(goals))
	for _, g := range goals {
		actions = append(actions, goalDraftAction(g))
	}
	return actions, nil
}

// goalDraftAction has no natural deadline, so it is always normal.
func goalDraftAction(g models.Goal) models.PendingAction {
	return models.PendingAction{
		ID:          models.CategoryGoalDraft + "-" + g.ID,
		Category:    models.CategoryGoalDraft,
		Title:       "Finish your draft goal",
		Description: fmt.Sprintf("Goal %q is still in draft", g.Title),
		Priority:    models.PriorityNormal,
		SourceID:    g.ID,
		Link:        "/goals/" + g.ID,
		Actionable:  true,
	}
}

type selfEvaluationCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c selfEvaluationCollector) Category() string { return models.CategorySelfEvaluation }

func (c selfEvaluationCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var evals []models.Evaluation
	err := c.db.WithContext(ctx).
		Where("employee_id = ? AND kind = ? AND status = ?",
			scope.EmployeeID, models.EvaluationKindSelf, models.EvaluationStatusPending).
		Order("cycle_ends_at asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&evals).Error
	if err != nil {
		log.Printf("[selfEvaluationCollector] Error fetching pending self evaluations: %v", err)
		return nil, fmt.Errorf("fetching pending self evaluations: %w", err)
	}

	now := time.Now()
	actions := make([]models.PendingAction, 0, len(evals))
	for _, ev := range evals {
		actions = append(actions, selfEvaluationAction(ev, now, c.cfg))
	}
	return actions, nil
}

func selfEvaluationAction(ev models.Evaluation, now time.Time, cfg FeedConfig) models.PendingAction {
	due := ev.CycleEndsAt
	return models.PendingAction{
		ID:          models.CategorySelfEvaluation + "-" + ev.ID,
		Category:    models.CategorySelfEvaluation,
		Title:       "Submit your self evaluation",
		Description: fmt.Sprintf("%s closes on %s", ev.CycleName, due.Format("Jan 2, 2006")),
		Priority:    priorityFor(&due, now, cfg),
		DueDate:     &due,
		SourceID:    ev.ID,
		Link:        "/evaluations/" + ev.ID,
		Actionable:  true,
	}
}

type onboardingTaskCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c onboardingTaskCollector) Category() string { return models.CategoryOnboardingTask }

func (c onboardingTaskCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	var tasks []models.OnboardingTask
	err := c.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", scope.EmployeeID, models.OnboardingStatusPending).
		Order("created_at asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&tasks).Error
	if err != nil {
		log.Printf("[onboardingTaskCollector] Error fetching onboarding tasks: %v", err)
		return nil, fmt.Errorf("fetching onboarding tasks: %w", err)
	}

	actions := make([]models.PendingAction, 0, len(tasks))
	for _, task := range tasks {
		actions = append(actions, onboardingTaskAction(task))
	}
	return actions, nil
}

func onboardingTaskAction(task models.OnboardingTask) models.PendingAction {
	return models.PendingAction{
		ID:          models.CategoryOnboardingTask + "-" + task.ID,
		Category:    models.CategoryOnboardingTask,
		Title:       "Complete an onboarding task",
		Description: task.Title,
		Priority:    models.PriorityNormal,
		SourceID:    task.ID,
		Link:        "/onboarding/tasks/" + task.ID,
		Actionable:  true,
	}
}

type oneOnOneCollector struct {
	db  *gorm.DB
	cfg FeedConfig
}

func (c oneOnOneCollector) Category() string { return models.CategoryOneOnOne }

// Collect picks up future scheduled 1:1s where the caller is either party.
// These are reminders, not tasks, so the records are not actionable.
func (c oneOnOneCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	now := time.Now()

	var meetings []models.OneOnOne
	err := c.db.WithContext(ctx).
		Where("(organizer_id = ? OR participant_id = ?) AND status = ? AND scheduled_at > ?",
			scope.EmployeeID, scope.EmployeeID, models.OneOnOneStatusScheduled, now).
		Order("scheduled_at asc").
		Limit(c.cfg.PerCollectorCap).
		Find(&meetings).Error
	if err != nil {
		log.Printf("[oneOnOneCollector] Error fetching scheduled one-on-ones: %v", err)
		return nil, fmt.Errorf("fetching scheduled one-on-ones: %w", err)
	}

	actions := make([]models.PendingAction, 0, len(meetings))
	for _, m := range meetings {
		otherID := m.ParticipantID
		if otherID == scope.EmployeeID {
			otherID = m.OrganizerID
		}
		actions = append(actions, oneOnOneAction(m, employeeName(c.db, otherID), now, c.cfg))
	}
	return actions, nil
}

func oneOnOneAction(m models.OneOnOne, counterparty string, now time.Time, cfg FeedConfig) models.PendingAction {
	due := m.ScheduledAt
	return models.PendingAction{
		ID:          models.CategoryOneOnOne + "-" + m.ID,
		Category:    models.CategoryOneOnOne,
		Title:       "Upcoming 1:1 with " + counterparty,
		Description: fmt.Sprintf("Scheduled for %s", due.Format("Jan 2, 2006 15:04")),
		Priority:    priorityFor(&due, now, cfg),
		DueDate:     &due,
		SourceID:    m.ID,
		Link:        "/one-on-ones/" + m.ID,
		Actionable:  false,
	}
}

// employeeName resolves a display name for feed titles. A lookup miss is
// logged and replaced with a placeholder rather than failing the feed.
func employeeName(db *gorm.DB, employeeID string) string {
	var emp models.Employee
	if err := db.Select("first_name", "last_name").Where("id = ?", employeeID).First(&emp).Error; err != nil {
		log.Printf("[employeeName] Could not load employee %s: %v", employeeID, err)
		return "a colleague"
	}
	return emp.FullName()
}
