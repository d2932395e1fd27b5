package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/database"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthCheck returns the API status together with database reachability
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code, dbStatus := "ok", http.StatusOK, "ok"
		if err := database.Ping(db); err != nil {
			status, code, dbStatus = "degraded", http.StatusServiceUnavailable, err.Error()
		}
		c.JSON(code, gin.H{
			"status":    status,
			"service":   "monitoring-dashboard",
			"version":   Version,
			"database":  dbStatus,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
