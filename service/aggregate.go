package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"golang.org/x/sync/errgroup"
)

// PendingActions builds the caller's feed: resolve the collector set from
// the role, fan out the collectors, merge, rank and truncate. If any
// collector fails the whole feed fails; the caller gets an error rather
// than a silently partial list.
func (s *PendingActionService) PendingActions(ctx context.Context, caller models.Employee, limit int) ([]models.PendingAction, error) {
	limit = s.clampLimit(limit)

	scope := Scope{EmployeeID: caller.ID, CompanyID: caller.CompanyID}
	merged, err := runCollectors(ctx, s.collectorsFor(caller), scope)
	if err != nil {
		log.Printf("[PendingActions] Aggregation failed for employee %s: %v", caller.ID, err)
		return nil, err
	}

	rankActions(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// clampLimit applies the limit rules: a negative or over-cap value falls
// back to the default, zero is honored as an intentionally empty feed.
func (s *PendingActionService) clampLimit(limit int) int {
	if limit < 0 || limit > s.cfg.MaxLimit {
		return s.cfg.DefaultLimit
	}
	return limit
}

// runCollectors fans the collectors out concurrently and collects their
// output in registry order, so the merged list is deterministic no matter
// which goroutine finishes first. The shared context cancels in-flight
// reads as soon as one collector errors or the request is cancelled.
func runCollectors(ctx context.Context, cols []collector, scope Scope) ([]models.PendingAction, error) {
	results := make([][]models.PendingAction, len(cols))

	g, gctx := errgroup.WithContext(ctx)
	for i, col := range cols {
		i, col := i, col
		g.Go(func() error {
			actions, err := col.Collect(gctx, scope)
			if err != nil {
				return fmt.Errorf("%s: %w", col.Category(), err)
			}
			results[i] = actions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.PendingAction
	for _, actions := range results {
		merged = append(merged, actions...)
	}
	return merged, nil
}

// rankActions sorts urgent before high before normal; within a tier,
// earlier due dates first and dated records before undated ones. The sort
// is stable so records that tie keep their production order.
func rankActions(actions []models.PendingAction) {
	sort.SliceStable(actions, func(i, j int) bool {
		a, b := actions[i], actions[j]
		if priorityRank[a.Priority] != priorityRank[b.Priority] {
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		}
		switch {
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})
}
