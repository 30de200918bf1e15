package services

import (
	"encoding/json"
	"time"

	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/pkg/logger"
	"gorm.io/gorm"
)

var activityDB *gorm.DB

// InitActivityLogger sets the database used by the package-level log writers.
// Activity writes are best effort: they never fail the request that caused them.
func InitActivityLogger(db *gorm.DB) {
	activityDB = db
}

func LogInfo(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeActivity("info", module, action, message, userID, ip, userAgent, extra)
}

func LogWarning(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeActivity("warning", module, action, message, userID, ip, userAgent, extra)
}

func LogError(module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	writeActivity("error", module, action, message, userID, ip, userAgent, extra)
}

func writeActivity(level, module, action, message string, userID *uint, ip, userAgent string, extra interface{}) {
	if activityDB == nil {
		return
	}

	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	entry := &models.ActivityLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	activityDB.Create(entry)
}

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Recent returns the latest activity entries for the dashboard feed.
func (s *ActivityService) Recent(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 20
	}

	var entries []models.ActivityLog
	err := s.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// CleanupOldEntries deletes activity entries older than retentionDays.
// Returns the number of deleted rows.
func (s *ActivityService) CleanupOldEntries(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.ActivityLog{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// RunCleanup is the cron entry point for retention cleanup.
func (s *ActivityService) RunCleanup(retentionDays int) {
	deleted, err := s.CleanupOldEntries(retentionDays)
	if err != nil {
		logger.Error().Err(err).Msg("activity log cleanup failed")
		return
	}
	if deleted > 0 {
		logger.Infof("cleaned up %d activity entries older than %d days", deleted, retentionDays)
	}
}
