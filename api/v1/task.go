package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monitoring-dashboard/repositories"
	"github.com/monitoring-dashboard/services"
	"go.uber.org/zap"
)

// TaskController handles task endpoints
type TaskController struct {
	tasks *services.TaskService
	log   *zap.Logger
}

// NewTaskController creates a new task controller
func NewTaskController(svc *services.Services, log *zap.Logger) *TaskController {
	return &TaskController{tasks: svc.Tasks, log: log}
}

// RegisterRoutes registers task routes
func (tc *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", tc.ListTasks)
		tasks.POST("", tc.CreateTask)
		tasks.GET("/:id", tc.GetTask)
		tasks.PUT("/:id", tc.UpdateTask)
		tasks.DELETE("/:id", tc.DeleteTask)
	}
}

// ListTasks returns all tasks, optionally narrowed by ?project_id= or ?non_project_id=.
// project_id wins when both are given.
func (tc *TaskController) ListTasks(c *gin.Context) {
	var (
		filter repositories.TaskFilter
		err    error
	)
	if filter.ProjectID, err = queryID(c, "project_id"); err != nil {
		respondError(c, tc.log, "Invalid filter", err)
		return
	}
	if filter.NonProjectID, err = queryID(c, "non_project_id"); err != nil {
		respondError(c, tc.log, "Invalid filter", err)
		return
	}

	tasks, err := tc.tasks.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, tc.log, "Failed to retrieve tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := tc.tasks.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, tc.log, "Failed to retrieve task", err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	input, ok := bindFields(c)
	if !ok {
		return
	}
	task, err := tc.tasks.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, tc.log, "Failed to create task", err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (tc *TaskController) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	input, ok := bindFields(c)
	if !ok {
		return
	}
	task, err := tc.tasks.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, tc.log, "Failed to update task", err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := tc.tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, tc.log, "Failed to delete task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
