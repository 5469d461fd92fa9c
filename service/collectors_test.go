package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"github.com/stretchr/testify/assert"
)

func TestGoalDraftAction(t *testing.T) {
	got := goalDraftAction(models.Goal{ID: "g1", Title: "Ship the Q3 roadmap", Status: models.GoalStatusDraft})

	assert.Equal(t, "goal-draft-g1", got.ID)
	assert.Equal(t, models.CategoryGoalDraft, got.Category)
	assert.Equal(t, models.PriorityNormal, got.Priority)
	assert.Nil(t, got.DueDate, "draft goals have no natural deadline")
	assert.True(t, got.Actionable)
	assert.Contains(t, got.Description, "Ship the Q3 roadmap")
}

func TestSelfEvaluationActionDueDate(t *testing.T) {
	cycleEnd := FixedTime.Add(2 * 24 * time.Hour)
	got := selfEvaluationAction(models.Evaluation{
		ID:          "ev1",
		CycleName:   "H1 2025",
		CycleEndsAt: cycleEnd,
	}, FixedTime, DefaultFeedConfig())

	assert.Equal(t, "self-evaluation-pending-ev1", got.ID)
	assert.Equal(t, &cycleEnd, got.DueDate)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.True(t, got.Actionable)
}

func TestOneOnOneActionIsInformational(t *testing.T) {
	scheduled := FixedTime.Add(26 * time.Hour)
	got := oneOnOneAction(models.OneOnOne{
		ID:          "m1",
		ScheduledAt: scheduled,
	}, "Dana Petrov", FixedTime, DefaultFeedConfig())

	assert.False(t, got.Actionable, "1:1 reminders carry no direct action")
	assert.Equal(t, "Upcoming 1:1 with Dana Petrov", got.Title)
	assert.Equal(t, models.PriorityHigh, got.Priority)
}

func TestLeaveApprovalActionDescription(t *testing.T) {
	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	got := leaveApprovalAction(models.LeaveRequest{
		ID:         "lr1",
		LeaveType:  "vacation",
		StartDate:  start,
		EndDate:    end,
	}, "Alex Kim", FixedTime, DefaultFeedConfig())

	assert.Equal(t, "Leave request from Alex Kim", got.Title)
	assert.Contains(t, got.Description, "vacation")
	assert.Contains(t, got.Description, "5 days")
	assert.Equal(t, &start, got.DueDate)
	assert.True(t, got.Actionable)
}

func TestContractExpiryAction(t *testing.T) {
	end := FixedTime.Add(20 * 24 * time.Hour)
	got := contractExpiryAction(models.Contract{
		ID:           "ct1",
		ContractType: "fixed-term",
		EndDate:      &end,
	}, "Alex Kim", FixedTime, DefaultFeedConfig())

	assert.Equal(t, "contract-expiring-ct1", got.ID)
	assert.False(t, got.Actionable)
	assert.Contains(t, got.Description, "20 days")
	assert.Equal(t, models.PriorityNormal, got.Priority)
}

func TestWorkPermitExpiryActionGoesUrgentWhenImminent(t *testing.T) {
	expiry := FixedTime.Add(12 * time.Hour)
	got := workPermitExpiryAction(models.WorkPermit{
		ID:        "wp1",
		Country:   "Germany",
		ExpiresAt: expiry,
	}, "Alex Kim", FixedTime, DefaultFeedConfig())

	assert.False(t, got.Actionable)
	assert.Equal(t, models.PriorityUrgent, got.Priority)
	assert.Contains(t, got.Title, "Alex Kim")
}

func TestPayrollReviewActionPriorityByState(t *testing.T) {
	base := models.PayrollRun{
		ID:          "pr1",
		PeriodStart: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		status       string
		wantPriority string
		wantWord     string
	}{
		{models.PayrollStatusDraft, models.PriorityNormal, "draft"},
		{models.PayrollStatusInReview, models.PriorityHigh, "in review"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			run := base
			run.Status = tt.status
			got := payrollReviewAction(run)
			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.Contains(t, got.Description, tt.wantWord)
			assert.Nil(t, got.DueDate)
		})
	}
}

func TestBulkLeaveActionThreshold(t *testing.T) {
	cfg := DefaultFeedConfig()

	tests := []struct {
		count        int
		wantPriority string
	}{
		{1, models.PriorityNormal},
		{10, models.PriorityNormal}, // at the threshold, not above it
		{11, models.PriorityHigh},
		{250, models.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("count=%d", tt.count), func(t *testing.T) {
			got := bulkLeaveAction("co-1", tt.count, cfg)
			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.Contains(t, got.Description, fmt.Sprintf("%d", tt.count))
			assert.Equal(t, "leave-approval-bulk-co-1", got.ID)
			assert.True(t, got.Actionable)
		})
	}
}

func TestSupportEscalationActionAlwaysHigh(t *testing.T) {
	got := supportEscalationAction(models.SupportEscalation{
		ID:      "esc1",
		Subject: "Payslip dispute went unanswered",
	})

	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, "Payslip dispute went unanswered", got.Description)
	assert.True(t, got.Actionable)
}

func TestProfileChangeAction(t *testing.T) {
	got := profileChangeAction(models.ProfileChangeRequest{ID: "pc1"}, "Dana Petrov")

	assert.Equal(t, "profile-change-approval-pc1", got.ID)
	assert.Equal(t, "Profile change from Dana Petrov", got.Title)
	assert.Equal(t, models.PriorityNormal, got.Priority)
	assert.Nil(t, got.DueDate)
}
