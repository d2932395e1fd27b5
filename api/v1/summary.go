package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/services"
	"go.uber.org/zap"
)

// SummaryController serves the dashboard rollups
type SummaryController struct {
	summary *services.SummaryService
	log     *zap.Logger
}

// NewSummaryController creates a new summary controller
func NewSummaryController(svc *services.Services, log *zap.Logger) *SummaryController {
	return &SummaryController{summary: svc.Summary, log: log}
}

// RegisterRoutes registers summary routes
func (sc *SummaryController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/summary", sc.GetSummary)
	router.GET("/summary/workload", sc.GetWorkload)
}

// GetSummary godoc
// @Summary Dashboard totals, distributions, priority lists and map points
// @Tags summary
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Router /summary [get]
func (sc *SummaryController) GetSummary(c *gin.Context) {
	summary, err := sc.summary.Summary(c.Request.Context())
	if err != nil {
		respondError(c, sc.log, "Failed to compute summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetWorkload godoc
// @Summary Weekly hours assigned to each person
// @Tags summary
// @Produce json
// @Success 200 {array} dto.WorkloadEntry
// @Router /summary/workload [get]
func (sc *SummaryController) GetWorkload(c *gin.Context) {
	entries, err := sc.summary.Workload(c.Request.Context())
	if err != nil {
		respondError(c, sc.log, "Failed to compute workload", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
