package main

import (
	"log"
	"net/http"

	controller "github.com/centralkang-byte/ctr-hr-hub-sub002/controller"
	"github.com/centralkang-byte/ctr-hr-hub-sub002/initializers"
	middleware "github.com/centralkang-byte/ctr-hr-hub-sub002/middleware"
	service "github.com/centralkang-byte/ctr-hr-hub-sub002/service"

	"github.com/gin-gonic/gin"
)

func init() {
	if err := initializers.LoadEnv(); err != nil {
		log.Printf("[WARN] No env file loaded: %s", err)
	}
	if err := initializers.ConnectDB(); err != nil {
		log.Fatalf("[CRITICAL] Failed to initialize database connection: %s", err)
	}
	if err := initializers.Migrate(); err != nil {
		log.Fatalf("[CRITICAL] Failed to run database migrations: %s", err)
	}
}

func main() {
	feedService := service.NewPendingActionService(initializers.DB, service.LoadFeedConfig())

	employeeService, err := service.NewEmployeeService(initializers.DB)
	if err != nil {
		log.Fatalf("Failed to initialize employee service: %s", err)
	}

	docService, err := service.NewDocumentService(initializers.DB)
	if err != nil {
		log.Fatalf("Failed to initialize document service: %s", err)
	}

	feedController := controller.NewFeedController(feedService)
	employeeController := controller.NewEmployeeController(employeeService)
	docController := controller.NewDocumentController(docService)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestID())

	// Global rate limiter for most routes
	router.Use(middleware.GlobalRateLimiter.Limit())

	// Healthcheck endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Everything below needs a resolved caller
	authed := router.Group("/", middleware.ResolveCaller(initializers.DB))

	authed.GET("/pending-actions", feedController.GetPendingActions)
	authed.GET("/employees/search", employeeController.SearchEmployees)

	// Document uploads are mutating, so they get the strict limiter
	authed.POST("/contracts/:id/document",
		middleware.StrictRateLimiter.Limit(),
		docController.UploadContractDocument)
	authed.POST("/work-permits/:id/document",
		middleware.StrictRateLimiter.Limit(),
		docController.UploadWorkPermitDocument)

	router.Run(":8080")
}
