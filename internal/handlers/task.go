package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/internal/middleware"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/internal/services"
	"github.com/synergysphere/synergysphere/pkg/flash"
	"github.com/synergysphere/synergysphere/pkg/response"
	"gorm.io/gorm"
)

type TaskHandler struct {
	taskService    *services.TaskService
	projectService *services.ProjectService
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{
		taskService:    services.NewTaskService(db),
		projectService: services.NewProjectService(db),
	}
}

// Board serves the project's task board.
// GET /project/:id/tasks
func (h *TaskHandler) Board(c *gin.Context) {
	projectID := middleware.GetProjectID(c)

	project, err := h.projectService.GetByID(projectID)
	if err != nil {
		response.NotFound(c, "project not found")
		return
	}

	tasks, err := h.taskService.ListByProject(projectID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	view(c, gin.H{"page": "task_board", "project": project, "tasks": tasks})
}

// Create handles the new-task form.
// POST /project/:id/task/create
func (h *TaskHandler) Create(c *gin.Context) {
	projectID := middleware.GetProjectID(c)
	detailURL := fmt.Sprintf("/project/%d", projectID)

	var req services.CreateTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Set(c, flash.CategoryWarning, "Invalid task form")
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	if _, err := h.taskService.Create(projectID, &req); err != nil {
		if services.IsValidation(err) {
			flash.Set(c, flash.CategoryWarning, err.Error())
		} else {
			flash.Set(c, flash.CategoryDanger, "Failed to create task")
		}
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	flash.Set(c, flash.CategorySuccess, "Task created")
	c.Redirect(http.StatusFound, detailURL)
}

// Detail serves a single task. Membership is derived from the task's own
// project id, not from anything the caller supplies.
// GET /task/:id
func (h *TaskHandler) Detail(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	view(c, gin.H{"page": "task_detail", "task": task})
}

// UpdateStatus handles the status form on the task detail page.
// POST /task/:id
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	detailURL := fmt.Sprintf("/project/%d", task.ProjectID)
	status := c.PostForm("status")

	if _, err := h.taskService.UpdateStatus(task.ID, status, middleware.GetUserID(c)); err != nil {
		switch {
		case services.IsValidation(err):
			flash.Set(c, flash.CategoryDanger, "Invalid status")
			c.Redirect(http.StatusFound, detailURL)
		case errors.Is(err, services.ErrNotMember):
			response.Forbidden(c, "you are not a member of this project")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "task not found")
		default:
			flash.Set(c, flash.CategoryDanger, "Failed to update task")
			c.Redirect(http.StatusFound, detailURL)
		}
		return
	}

	flash.Set(c, flash.CategorySuccess, "Task updated")
	c.Redirect(http.StatusFound, detailURL)
}

// loadTask fetches the task from the :id param and enforces membership in
// its project. On failure it writes the response and returns ok=false.
func (h *TaskHandler) loadTask(c *gin.Context) (*models.Task, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c, "task not found")
		return nil, false
	}

	t, err := h.taskService.GetByID(uint(taskID))
	if err != nil {
		response.NotFound(c, "task not found")
		return nil, false
	}

	if err := h.taskService.CheckAccess(t, middleware.GetUserID(c)); err != nil {
		if errors.Is(err, services.ErrNotMember) {
			response.Forbidden(c, "you are not a member of this project")
		} else {
			response.ServerError(c, err.Error())
		}
		return nil, false
	}

	return t, true
}
