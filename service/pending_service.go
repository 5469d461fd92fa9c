package services

import (
	"context"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"gorm.io/gorm"
)

// collector is one pending-action source. Each implementation issues a
// bounded read-only query for its domain and maps the rows into
// PendingActions. Returning zero records is a normal outcome.
type collector interface {
	Category() string
	Collect(ctx context.Context, scope Scope) ([]models.PendingAction, error)
}

// PendingActionService assembles the per-user feed of items needing
// attention. It owns no state beyond the DB handle and its configuration;
// every feed is computed fresh from the domain tables.
type PendingActionService struct {
	db  *gorm.DB
	cfg FeedConfig
}

func NewPendingActionService(db *gorm.DB, cfg FeedConfig) *PendingActionService {
	return &PendingActionService{db: db, cfg: cfg}
}

// collectorsFor builds the collector registry for one caller from the
// groups the role resolves to. The registry order is fixed, which keeps
// concatenation order deterministic for the stable sort.
func (s *PendingActionService) collectorsFor(caller models.Employee) []collector {
	groups := resolveGroups(caller.Role)

	cols := []collector{
		goalDraftCollector{db: s.db, cfg: s.cfg},
		selfEvaluationCollector{db: s.db, cfg: s.cfg},
		onboardingTaskCollector{db: s.db, cfg: s.cfg},
		oneOnOneCollector{db: s.db, cfg: s.cfg},
	}

	if groups.Manager {
		cols = append(cols,
			leaveApprovalCollector{db: s.db, cfg: s.cfg},
			profileChangeCollector{db: s.db, cfg: s.cfg},
			managerEvaluationCollector{db: s.db, cfg: s.cfg},
			goalApprovalCollector{db: s.db, cfg: s.cfg},
			contractExpiryCollector{db: s.db, cfg: s.cfg},
			workPermitExpiryCollector{db: s.db, cfg: s.cfg},
		)
	}

	if groups.HR {
		cols = append(cols,
			payrollReviewCollector{db: s.db, cfg: s.cfg},
			bulkLeaveCollector{db: s.db, cfg: s.cfg},
			supportEscalationCollector{db: s.db, cfg: s.cfg},
		)
	}

	// groups.Executive activates nothing further for now.

	return cols
}

// directReportIDs is the subquery every manager-scoped collector filters
// with: employees whose manager reference equals the caller.
func directReportIDs(db *gorm.DB, managerID string) *gorm.DB {
	return db.Model(&models.Employee{}).Select("id").Where("manager_id = ?", managerID)
}
