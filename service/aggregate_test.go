package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"github.com/stretchr/testify/assert"
)

// stubCollector feeds canned records (or a canned error) into the
// aggregation pipeline.
type stubCollector struct {
	category string
	actions  []models.PendingAction
	err      error
}

func (s stubCollector) Category() string { return s.category }

func (s stubCollector) Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.actions, nil
}

func action(id, priority string, due *time.Time) models.PendingAction {
	return models.PendingAction{
		ID:       id,
		Category: models.CategoryGoalDraft,
		Priority: priority,
		DueDate:  due,
		SourceID: id,
	}
}

func TestRunCollectorsMergesInRegistryOrder(t *testing.T) {
	cols := []collector{
		stubCollector{category: "a", actions: []models.PendingAction{action("a-1", models.PriorityNormal, nil), action("a-2", models.PriorityNormal, nil)}},
		stubCollector{category: "b", actions: nil},
		stubCollector{category: "c", actions: []models.PendingAction{action("c-1", models.PriorityNormal, nil)}},
	}

	merged, err := runCollectors(context.Background(), cols, Scope{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a-1", "a-2", "c-1"}, idsOf(merged))
}

func TestRunCollectorsFailsWhole(t *testing.T) {
	cols := []collector{
		stubCollector{category: "healthy", actions: []models.PendingAction{action("h-1", models.PriorityUrgent, nil)}},
		stubCollector{category: "broken", err: errors.New("connection refused")},
	}

	merged, err := runCollectors(context.Background(), cols, Scope{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Nil(t, merged, "no partial feed on collector failure")
}

func TestRankActionsOrdering(t *testing.T) {
	soon := FixedTime.Add(12 * time.Hour)
	later := FixedTime.Add(48 * time.Hour)

	actions := []models.PendingAction{
		action("normal-undated", models.PriorityNormal, nil),
		action("high-later", models.PriorityHigh, &later),
		action("urgent-undated", models.PriorityUrgent, nil),
		action("high-soon", models.PriorityHigh, &soon),
		action("urgent-soon", models.PriorityUrgent, &soon),
	}

	rankActions(actions)
	assert.Equal(t, []string{
		"urgent-soon",    // urgent tier, dated before undated
		"urgent-undated", //
		"high-soon",      // high tier by due date
		"high-later",     //
		"normal-undated", //
	}, idsOf(actions))
}

// Records that tie on priority and have no due date keep the order they
// were produced in.
func TestRankActionsStable(t *testing.T) {
	actions := []models.PendingAction{
		action("first", models.PriorityNormal, nil),
		action("second", models.PriorityNormal, nil),
		action("third", models.PriorityNormal, nil),
	}

	rankActions(actions)
	assert.Equal(t, []string{"first", "second", "third"}, idsOf(actions))
}

func TestRankActionsIdempotent(t *testing.T) {
	soon := FixedTime.Add(6 * time.Hour)
	build := func() []models.PendingAction {
		return []models.PendingAction{
			action("b", models.PriorityNormal, nil),
			action("a", models.PriorityUrgent, &soon),
			action("c", models.PriorityHigh, nil),
		}
	}

	first := build()
	second := build()
	rankActions(first)
	rankActions(second)
	assert.Equal(t, first, second)
}

func TestClampLimit(t *testing.T) {
	s := &PendingActionService{cfg: DefaultFeedConfig()}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"negative falls back to default", -1, 10},
		{"zero is honored", 0, 0},
		{"in range passes through", 7, 7},
		{"max is honored", 50, 50},
		{"above max falls back to default", 51, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.clampLimit(tt.limit))
		})
	}
}

// A manager whose report has a leave request starting tomorrow and an
// evaluation due in ten days sees the leave request first, no matter which
// collector produced its record first.
func TestManagerScenarioLeaveOutranksEvaluation(t *testing.T) {
	cfg := DefaultFeedConfig()
	now := FixedTime

	evaluation := managerEvaluationAction(models.Evaluation{
		ID:          "eval-1",
		EmployeeID:  "report-1",
		EvaluatorID: "mgr-1",
		Kind:        models.EvaluationKindManager,
		CycleName:   "H1 2025",
		CycleEndsAt: now.Add(10 * 24 * time.Hour),
	}, "Alex Kim", now, cfg)

	leave := leaveApprovalAction(models.LeaveRequest{
		ID:         "leave-1",
		EmployeeID: "report-1",
		LeaveType:  "vacation",
		StartDate:  now.Add(24 * time.Hour),
		EndDate:    now.Add(3 * 24 * time.Hour),
	}, "Alex Kim", now, cfg)

	assert.Equal(t, models.PriorityUrgent, leave.Priority)
	assert.Equal(t, models.PriorityNormal, evaluation.Priority)

	// Evaluation produced first on purpose.
	feed := []models.PendingAction{evaluation, leave}
	rankActions(feed)
	assert.Equal(t, "leave-approval-leave-1", feed[0].ID)
}

func idsOf(actions []models.PendingAction) []string {
	ids := make([]string, 0, len(actions))
	for _, a := range actions {
		ids = append(ids, a.ID)
	}
	return ids
}
