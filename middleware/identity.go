package middleware

import (
	"log"
	"net/http"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CallerKey is the gin context key under which ResolveCaller stores the
// authenticated employee.
const CallerKey = "caller"

// ResolveCaller loads the employee record for the identity the gateway
// attached to the request. Session validation happens upstream; by the time
// a request reaches this service the X-Employee-ID header is trusted.
func ResolveCaller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetHeader("X-Employee-ID")
		if employeeID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing X-Employee-ID header"})
			c.Abort()
			return
		}

		var caller models.Employee
		if err := db.First(&caller, "id = ?", employeeID).Error; err != nil {
			log.Printf("[ResolveCaller] Unknown employee %s: %v", employeeID, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown employee"})
			c.Abort()
			return
		}

		c.Set(CallerKey, caller)
		c.Next()
	}
}

// CallerFrom pulls the employee stored by ResolveCaller out of the context.
func CallerFrom(c *gin.Context) (models.Employee, bool) {
	v, ok := c.Get(CallerKey)
	if !ok {
		return models.Employee{}, false
	}
	caller, ok := v.(models.Employee)
	return caller, ok
}
