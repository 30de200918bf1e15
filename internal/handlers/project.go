package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/internal/middleware"
	"github.com/synergysphere/synergysphere/internal/services"
	"github.com/synergysphere/synergysphere/pkg/flash"
	"github.com/synergysphere/synergysphere/pkg/response"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
	memberService  *services.MemberService
	chatService    *services.ChatService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
		taskService:    services.NewTaskService(db),
		memberService:  services.NewMemberService(db),
		chatService:    services.NewChatService(db),
	}
}

// Create handles the new-project form.
// POST /project/create
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Set(c, flash.CategoryWarning, "Invalid project form")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if _, err := h.projectService.Create(&req, middleware.GetUserID(c)); err != nil {
		if services.IsValidation(err) {
			flash.Set(c, flash.CategoryWarning, err.Error())
		} else {
			flash.Set(c, flash.CategoryDanger, "Failed to create project")
		}
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flash.Set(c, flash.CategorySuccess, "Project created successfully!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Detail serves a project with its board, members and chat log.
// GET /project/:id
func (h *ProjectHandler) Detail(c *gin.Context) {
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
	members, err := h.memberService.List(projectID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	messages, err := h.chatService.List(projectID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	view(c, gin.H{
		"page":     "project_detail",
		"project":  project,
		"tasks":    tasks,
		"members":  members,
		"messages": messages,
	})
}

// ShowEdit serves the edit form's view model.
// GET /project/:id/edit
func (h *ProjectHandler) ShowEdit(c *gin.Context) {
	project, err := h.projectService.GetByID(middleware.GetProjectID(c))
	if err != nil {
		response.NotFound(c, "project not found")
		return
	}
	view(c, gin.H{"page": "edit_project", "project": project})
}

// Edit handles the edit form.
// POST /project/:id/edit
func (h *ProjectHandler) Edit(c *gin.Context) {
	projectID := middleware.GetProjectID(c)
	detailURL := fmt.Sprintf("/project/%d", projectID)

	var req services.UpdateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		flash.Set(c, flash.CategoryWarning, "Invalid project form")
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	if _, err := h.projectService.Update(projectID, &req); err != nil {
		switch {
		case services.IsValidation(err):
			flash.Set(c, flash.CategoryWarning, err.Error())
			c.Redirect(http.StatusFound, detailURL)
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "project not found")
		default:
			flash.Set(c, flash.CategoryDanger, "Failed to update project")
			c.Redirect(http.StatusFound, detailURL)
		}
		return
	}

	flash.Set(c, flash.CategorySuccess, "Project updated successfully!")
	c.Redirect(http.StatusFound, detailURL)
}

// Delete removes the project and everything scoped to it.
// DELETE /project/:id/delete
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID := middleware.GetProjectID(c)

	if err := h.projectService.Delete(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "project not found")
			return
		}
		flash.Set(c, flash.CategoryDanger, "Failed to delete project")
		c.Redirect(http.StatusFound, fmt.Sprintf("/project/%d", projectID))
		return
	}

	flash.Set(c, flash.CategorySuccess, "Project deleted successfully!")
	c.Redirect(http.StatusFound, "/projects")
}
