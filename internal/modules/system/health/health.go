package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/solvex-capital/marketing-core/internal/pkg/response"
)

// RegisterRoutes mounts the liveness endpoint.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, environment string) {
	rg.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		dbOK := err == nil && sqlDB.Ping() == nil

		status := http.StatusOK
		message := "Server is running"
		if !dbOK {
			status = http.StatusServiceUnavailable
			message = "Server is degraded"
		}

		c.JSON(status, response.Envelope{
			Success: dbOK,
			Message: message,
			Data: gin.H{
				"timestamp":   time.Now().UTC().Format(time.RFC3339),
				"environment": environment,
				"database":    dbOK,
			},
		})
	})
}
