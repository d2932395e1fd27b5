package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, svc *services.Services, db *gorm.DB, log *zap.Logger) {
	// Health check endpoint
	router.GET("/health", HealthCheck(db))

	NewProjectController(svc, log).RegisterRoutes(router)
	NewNonProjectController(svc, log).RegisterRoutes(router)
	NewTaskController(svc, log).RegisterRoutes(router)
	NewManPowerController(svc, log).RegisterRoutes(router)
	NewAssignmentController(svc, log).RegisterRoutes(router)

	// Dashboard rollups
	NewSummaryController(svc, log).RegisterRoutes(router)
}
