package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/repositories"
	"github.com/monitoring-dashboard/services"
	"go.uber.org/zap"
)

// ManPowerController handles personnel endpoints
type ManPowerController struct {
	manPower    *services.ManPowerService
	assignments *services.AssignmentService
	log         *zap.Logger
}

// NewManPowerController creates a new manpower controller
func NewManPowerController(svc *services.Services, log *zap.Logger) *ManPowerController {
	return &ManPowerController{
		manPower:    svc.ManPower,
		assignments: svc.Assignments,
		log:         log,
	}
}

// RegisterRoutes registers manpower routes
func (mc *ManPowerController) RegisterRoutes(router *gin.RouterGroup) {
	manpower := router.Group("/manpower")
	{
		manpower.GET("", mc.ListManPower)
		manpower.POST("", mc.CreateManPower)
		manpower.GET("/:id", mc.GetManPower)
		manpower.PUT("/:id", mc.UpdateManPower)
		manpower.DELETE("/:id", mc.DeleteManPower)
		manpower.GET("/:id/assignments", mc.ListManPowerAssignments)
	}
}

func (mc *ManPowerController) ListManPower(c *gin.Context) {
	people, err := mc.manPower.List(c.Request.Context())
	if err != nil {
		respondError(c, mc.log, "Failed to retrieve manpower", err)
		return
	}
	c.JSON(http.StatusOK, people)
}

func (mc *ManPowerController) GetManPower(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	person, err := mc.manPower.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, mc.log, "Failed to retrieve manpower", err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (mc *ManPowerController) CreateManPower(c *gin.Context) {
	input, ok := bindFields(c)
	if !ok {
		return
	}
	person, err := mc.manPower.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, mc.log, "Failed to create manpower", err)
		return
	}
	c.JSON(http.StatusCreated, person)
}

func (mc *ManPowerController) UpdateManPower(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	input, ok := bindFields(c)
	if !ok {
		return
	}
	person, err := mc.manPower.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, mc.log, "Failed to update manpower", err)
		return
	}
	c.JSON(http.StatusOK, person)
}

// DeleteManPower removes a person and every assignment they hold
func (mc *ManPowerController) DeleteManPower(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := mc.manPower.Delete(c.Request.Context(), id); err != nil {
		respondError(c, mc.log, "Failed to delete manpower", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ManPower deleted successfully"})
}

func (mc *ManPowerController) ListManPowerAssignments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	assignments, err := mc.assignments.List(c.Request.Context(), repositories.AssignmentFilter{ManPowerID: &id})
	if err != nil {
		respondError(c, mc.log, "Failed to retrieve assignments", err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}
