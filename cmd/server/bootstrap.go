package main

import (
	"github.com/robfig/cron/v3"
	"github.com/synergysphere/synergysphere/internal/config"
	"github.com/synergysphere/synergysphere/internal/handlers"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/internal/services"
	"github.com/synergysphere/synergysphere/internal/utils"
	"github.com/synergysphere/synergysphere/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cron           *cron.Cron
	authHandler    *handlers.AuthHandler
	pageHandler    *handlers.PageHandler
	projectHandler *handlers.ProjectHandler
	taskHandler    *handlers.TaskHandler
	memberHandler  *handlers.MemberHandler
	chatHandler    *handlers.ChatHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.Session.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	services.InitActivityLogger(db)

	authService := services.NewAuthService(db, &cfg.Session)
	activityService := services.NewActivityService(db)

	// Background maintenance: expired sessions hourly, activity retention daily.
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if n, err := authService.PurgeExpiredSessions(); err != nil {
			logger.Error().Err(err).Msg("session purge failed")
		} else if n > 0 {
			logger.Infof("purged %d expired sessions", n)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule session purge: %v", err)
	}
	if _, err := c.AddFunc("@daily", func() {
		activityService.RunCleanup(cfg.Activity.RetentionDays)
	}); err != nil {
		logger.Fatalf("Failed to schedule activity cleanup: %v", err)
	}
	c.Start()

	return &appServices{
		cron:           c,
		authHandler:    handlers.NewAuthHandler(db, cfg),
		pageHandler:    handlers.NewPageHandler(db, cfg),
		projectHandler: handlers.NewProjectHandler(db),
		taskHandler:    handlers.NewTaskHandler(db),
		memberHandler:  handlers.NewMemberHandler(db),
		chatHandler:    handlers.NewChatHandler(db),
	}
}

// shutdown gracefully stops all background work.
func (s *appServices) shutdown() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Schedulers stopped")
}
