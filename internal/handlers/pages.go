package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/internal/config"
	"github.com/synergysphere/synergysphere/internal/middleware"
	"github.com/synergysphere/synergysphere/internal/services"
	"github.com/synergysphere/synergysphere/pkg/response"
	"gorm.io/gorm"
)

// PageHandler assembles view models for the top-level pages.
type PageHandler struct {
	db              *gorm.DB
	sessionCfg      *config.SessionConfig
	authService     *services.AuthService
	projectService  *services.ProjectService
	taskService     *services.TaskService
	activityService *services.ActivityService
}

func NewPageHandler(db *gorm.DB, cfg *config.Config) *PageHandler {
	return &PageHandler{
		db:              db,
		sessionCfg:      &cfg.Session,
		authService:     services.NewAuthService(db, &cfg.Session),
		projectService:  services.NewProjectService(db),
		taskService:     services.NewTaskService(db),
		activityService: services.NewActivityService(db),
	}
}

// Home redirects to the dashboard or registration depending on session state.
// GET /
func (h *PageHandler) Home(c *gin.Context) {
	if _, ok := middleware.CurrentUserID(c, h.db, h.sessionCfg); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/register")
}

// Dashboard serves the user's projects and recent activity.
// GET /dashboard
func (h *PageHandler) Dashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	projects, err := h.projectService.ListForUser(userID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	activity, err := h.activityService.Recent(20)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	view(c, gin.H{
		"page":     "dashboard",
		"projects": projects,
		"activity": activity,
	})
}

// Projects lists the caller's projects.
// GET /projects
func (h *PageHandler) Projects(c *gin.Context) {
	projects, err := h.projectService.ListForUser(middleware.GetUserID(c))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	view(c, gin.H{"page": "projects", "projects": projects})
}

// Tasks lists the tasks assigned to the caller across projects.
// GET /tasks
func (h *PageHandler) Tasks(c *gin.Context) {
	tasks, err := h.taskService.ListByAssignee(middleware.GetUserID(c))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	view(c, gin.H{"page": "tasks", "tasks": tasks})
}

// Main serves the combined projects-and-assigned-tasks view.
// GET /main
func (h *PageHandler) Main(c *gin.Context) {
	userID := middleware.GetUserID(c)

	projects, err := h.projectService.ListForUser(userID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	tasks, err := h.taskService.ListByAssignee(userID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	view(c, gin.H{
		"page":     "main",
		"projects": projects,
		"tasks":    tasks,
	})
}

// Profile serves the current user.
// GET /profile
func (h *PageHandler) Profile(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	view(c, gin.H{"page": "profile", "user": user})
}

// Static serves the public chrome pages (solutions, work, about).
func (h *PageHandler) Static(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		view(c, gin.H{"page": page})
	}
}
