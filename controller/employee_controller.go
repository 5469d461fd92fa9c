package controller

import (
	"net/http"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/middleware"
	service "github.com/centralkang-byte/ctr-hr-hub-sub002/service"
	"github.com/gin-gonic/gin"
)

// EmployeeController serves the directory endpoints.
type EmployeeController struct {
	service *service.EmployeeService
}

func NewEmployeeController(service *service.EmployeeService) *EmployeeController {
	return &EmployeeController{service}
}

// SearchEmployees handles GET /employees/search?q=, scoped to the
// caller's company.
func (c *EmployeeController) SearchEmployees(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Caller identity not resolved"})
		return
	}

	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	results, err := c.service.SearchEmployees(ctx.Request.Context(), caller.CompanyID, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"results": results,
		"total":   len(results),
	})
}
