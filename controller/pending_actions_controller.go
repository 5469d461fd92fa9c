package controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/middleware"
	service "github.com/centralkang-byte/ctr-hr-hub-sub002/service"
	"github.com/gin-gonic/gin"
)

// FeedController serves the pending-action feed.
type FeedController struct {
	service *service.PendingActionService
}

func NewFeedController(service *service.PendingActionService) *FeedController {
	return &FeedController{service}
}

// GetPendingActions handles GET /pending-actions?limit=n. A missing or
// unparsable limit falls back to the configured default inside the
// service; an empty feed is a normal 200.
func (c *FeedController) GetPendingActions(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Caller identity not resolved"})
		return
	}

	limit := -1
	if raw, present := ctx.GetQuery("limit"); present {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("[GetPendingActions] Ignoring unparsable limit %q", raw)
		} else {
			limit = parsed
		}
	}

	actions, err := c.service.PendingActions(ctx.Request.Context(), caller, limit)
	if err != nil {
		log.Printf("[GetPendingActions] Error building feed for %s: %v", caller.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Could not load pending actions",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Pending actions retrieved successfully",
		"actions": actions,
		"total":   len(actions),
	})
}
