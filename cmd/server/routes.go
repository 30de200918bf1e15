package main

import (
	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/internal/config"
	"github.com/synergysphere/synergysphere/internal/handlers"
	"github.com/synergysphere/synergysphere/internal/middleware"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	// Middleware
	r.Use(middleware.RequestID())
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for the credential endpoints
	credentialLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Health check
	r.GET("/health", handlers.HealthCheck)

	// Public pages
	r.GET("/", svc.pageHandler.Home)
	r.GET("/solutions", svc.pageHandler.Static("solutions"))
	r.GET("/work", svc.pageHandler.Static("work"))
	r.GET("/about", svc.pageHandler.Static("about"))

	// Auth (public)
	r.GET("/login", svc.authHandler.ShowLogin)
	r.POST("/login", credentialLimiter.Middleware(), svc.authHandler.Login)
	r.GET("/register", svc.authHandler.ShowRegister)
	r.POST("/register", credentialLimiter.Middleware(), svc.authHandler.Register)

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.SessionRequired(models.GetDB(), &cfg.Session), middleware.Audit())
	{
		protected.GET("/logout", svc.authHandler.Logout)

		protected.GET("/dashboard", svc.pageHandler.Dashboard)
		protected.GET("/projects", svc.pageHandler.Projects)
		protected.GET("/tasks", svc.pageHandler.Tasks)
		protected.GET("/main", svc.pageHandler.Main)
		protected.GET("/profile", svc.pageHandler.Profile)

		protected.POST("/project/create", svc.projectHandler.Create)

		// Everything scoped under a project id requires membership
		project := protected.Group("/project/:id")
		project.Use(middleware.MembershipRequired(models.GetDB()))
		{
			project.GET("", svc.projectHandler.Detail)
			project.GET("/edit", svc.projectHandler.ShowEdit)
			project.POST("/edit", svc.projectHandler.Edit)
			project.DELETE("/delete", svc.projectHandler.Delete)
			project.POST("/member/add", svc.memberHandler.Add)
			project.GET("/tasks", svc.taskHandler.Board)
			project.POST("/task/create", svc.taskHandler.Create)
			project.POST("/chat", svc.chatHandler.Post)
		}

		// Task routes derive membership from the task's own project
		protected.GET("/task/:id", svc.taskHandler.Detail)
		protected.POST("/task/:id", svc.taskHandler.UpdateStatus)
	}
}
