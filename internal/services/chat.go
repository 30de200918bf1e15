package services

import (
	"strings"

	"github.com/synergysphere/synergysphere/internal/models"
	"gorm.io/gorm"
)

type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// Post appends a message to the project's chat log. Content is trimmed and
// empty messages are rejected with ErrEmptyMessage; the timestamp is assigned
// server-side at write time.
func (s *ChatService) Post(projectID, authorID uint, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	message := models.Message{
		ProjectID: projectID,
		UserID:    authorID,
		Content:   content,
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	return &message, nil
}

// List returns the project's chat log in posting order, oldest first.
func (s *ChatService) List(projectID uint) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.Where("project_id = ?", projectID).
		Preload("User").
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
