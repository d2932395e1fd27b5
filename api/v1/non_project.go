package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/repositories"
	"github.com/monitoring-dashboard/services"
	"go.uber.org/zap"
)

// NonProjectController handles endpoints for non-project activities
type NonProjectController struct {
	nonProjects *services.NonProjectService
	tasks       *services.TaskService
	log         *zap.Logger
}

// NewNonProjectController creates a new non-project controller
func NewNonProjectController(svc *services.Services, log *zap.Logger) *NonProjectController {
	return &NonProjectController{
		nonProjects: svc.NonProjects,
		tasks:       svc.Tasks,
		log:         log,
	}
}

// RegisterRoutes registers non-project routes
func (nc *NonProjectController) RegisterRoutes(router *gin.RouterGroup) {
	nonProjects := router.Group("/non-projects")
	{
		nonProjects.GET("", nc.ListNonProjects)
		nonProjects.POST("", nc.CreateNonProject)
		nonProjects.GET("/:id", nc.GetNonProject)
		nonProjects.PUT("/:id", nc.UpdateNonProject)
		nonProjects.DELETE("/:id", nc.DeleteNonProject)
		nonProjects.GET("/:id/tasks", nc.ListNonProjectTasks)
	}
}

func (nc *NonProjectController) ListNonProjects(c *gin.Context) {
	nonProjects, err := nc.nonProjects.List(c.Request.Context())
	if err != nil {
		respondError(c, nc.log, "Failed to retrieve non-projects", err)
		return
	}
	c.JSON(http.StatusOK, nonProjects)
}

func (nc *NonProjectController) GetNonProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	nonProject, err := nc.nonProjects.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, nc.log, "Failed to retrieve non-project", err)
		return
	}
	c.JSON(http.StatusOK, nonProject)
}

func (nc *NonProjectController) CreateNonProject(c *gin.Context) {
	input, ok := bindFields(c)
	if !ok {
		return
	}
	nonProject, err := nc.nonProjects.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, nc.log, "Failed to create non-project", err)
		return
	}
	c.JSON(http.StatusCreated, nonProject)
}

func (nc *NonProjectController) UpdateNonProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	input, ok := bindFields(c)
	if !ok {
		return
	}
	nonProject, err := nc.nonProjects.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, nc.log, "Failed to update non-project", err)
		return
	}
	c.JSON(http.StatusOK, nonProject)
}

func (nc *NonProjectController) DeleteNonProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := nc.nonProjects.Delete(c.Request.Context(), id); err != nil {
		respondError(c, nc.log, "Failed to delete non-project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Non-project deleted successfully"})
}

func (nc *NonProjectController) ListNonProjectTasks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tasks, err := nc.tasks.List(c.Request.Context(), repositories.TaskFilter{NonProjectID: &id})
	if err != nil {
		respondError(c, nc.log, "Failed to retrieve tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}
