package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/repositories"
	"github.com/monitoring-dashboard/services"
	"go.uber.org/zap"
)

// AssignmentController handles staffing assignment endpoints
type AssignmentController struct {
	assignments *services.AssignmentService
	log         *zap.Logger
}

// NewAssignmentController creates a new assignment controller
func NewAssignmentController(svc *services.Services, log *zap.Logger) *AssignmentController {
	return &AssignmentController{assignments: svc.Assignments, log: log}
}

// RegisterRoutes registers assignment routes
func (ac *AssignmentController) RegisterRoutes(router *gin.RouterGroup) {
	assignments := router.Group("/assignments")
	{
		assignments.GET("", ac.ListAssignments)
		assignments.POST("", ac.CreateAssignment)
		assignments.GET("/:id", ac.GetAssignment)
		assignments.PUT("/:id", ac.UpdateAssignment)
		assignments.DELETE("/:id", ac.DeleteAssignment)
	}
}

// ListAssignments accepts ?manpower_id=, ?project_id= and ?non_project_id=;
// only the first one present, in that order, is applied.
func (ac *AssignmentController) ListAssignments(c *gin.Context) {
	var (
		filter repositories.AssignmentFilter
		err    error
	)
	for key, dst := range map[string]**uint{
		"manpower_id":    &filter.ManPowerID,
		"project_id":     &filter.ProjectID,
		"non_project_id": &filter.NonProjectID,
	} {
		if *dst, err = queryID(c, key); err != nil {
			respondError(c, ac.log, "Invalid filter", err)
			return
		}
	}

	assignments, err := ac.assignments.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, ac.log, "Failed to retrieve assignments", err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (ac *AssignmentController) GetAssignment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	assignment, err := ac.assignments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ac.log, "Failed to retrieve assignment", err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (ac *AssignmentController) CreateAssignment(c *gin.Context) {
	input, ok := bindFields(c)
	if !ok {
		return
	}
	assignment, err := ac.assignments.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, ac.log, "Failed to create assignment", err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (ac *AssignmentController) UpdateAssignment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	input, ok := bindFields(c)
	if !ok {
		return
	}
	assignment, err := ac.assignments.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, ac.log, "Failed to update assignment", err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (ac *AssignmentController) DeleteAssignment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ac.assignments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ac.log, "Failed to delete assignment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}
