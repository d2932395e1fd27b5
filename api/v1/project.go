package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/repositories"
	"github.com/monitoring-dashboard/services"
	"go.uber.org/zap"
)

// ProjectController handles project endpoints
type ProjectController struct {
	projects    *services.ProjectService
	tasks       *services.TaskService
	assignments *services.AssignmentService
	log         *zap.Logger
}

// NewProjectController creates a new project controller
func NewProjectController(svc *services.Services, log *zap.Logger) *ProjectController {
	return &ProjectController{
		projects:    svc.Projects,
		tasks:       svc.Tasks,
		assignments: svc.Assignments,
		log:         log,
	}
}

// RegisterRoutes registers project routes
func (pc *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", pc.ListProjects)
		projects.POST("", pc.CreateProject)
		projects.GET("/:id", pc.GetProject)
		projects.PUT("/:id", pc.UpdateProject)
		projects.DELETE("/:id", pc.DeleteProject)
		projects.GET("/:id/s-curve", pc.GetProjectSCurve)
		projects.GET("/:id/tasks", pc.ListProjectTasks)
		projects.GET("/:id/assignments", pc.ListProjectAssignments)
	}
}

// ListProjects godoc
// @Summary List all projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects [get]
func (pc *ProjectController) ListProjects(c *gin.Context) {
	projects, err := pc.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, pc.log, "Failed to retrieve projects", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id} [get]
func (pc *ProjectController) GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	project, err := pc.projects.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.log, "Failed to retrieve project", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Success 201 {object} models.Project
// @Router /projects [post]
func (pc *ProjectController) CreateProject(c *gin.Context) {
	input, ok := bindFields(c)
	if !ok {
		return
	}
	project, err := pc.projects.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, pc.log, "Failed to create project", err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary Update some fields of a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id} [put]
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	input, ok := bindFields(c)
	if !ok {
		return
	}
	project, err := pc.projects.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, pc.log, "Failed to update project", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project with its tasks and assignments
// @Tags projects
// @Param id path int true "Project ID"
// @Router /projects/{id} [delete]
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := pc.projects.Delete(c.Request.Context(), id); err != nil {
		respondError(c, pc.log, "Failed to delete project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// GetProjectSCurve godoc
// @Summary Planned vs actual progress of a project by month
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.SCurve
// @Router /projects/{id}/s-curve [get]
func (pc *ProjectController) GetProjectSCurve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	curve, err := pc.projects.SCurve(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.log, "Failed to compute S-curve", err)
		return
	}
	c.JSON(http.StatusOK, curve)
}

// ListProjectTasks returns the tasks of a project
func (pc *ProjectController) ListProjectTasks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tasks, err := pc.tasks.List(c.Request.Context(), repositories.TaskFilter{ProjectID: &id})
	if err != nil {
		respondError(c, pc.log, "Failed to retrieve tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ListProjectAssignments returns the assignments of a project
func (pc *ProjectController) ListProjectAssignments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	assignments, err := pc.assignments.List(c.Request.Context(), repositories.AssignmentFilter{ProjectID: &id})
	if err != nil {
		respondError(c, pc.log, "Failed to retrieve assignments", err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}
