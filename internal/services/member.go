package services

import (
	"errors"

	"github.com/synergysphere/synergysphere/internal/models"
	"gorm.io/gorm"
)

type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

// IsMember reports whether the user has a membership row for the project.
func (s *MemberService) IsMember(projectID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

// RequireMembership returns ErrNotMember when the user has no membership row
// for the project. Every project-scoped operation goes through this check.
func (s *MemberService) RequireMembership(projectID, userID uint) error {
	ok, err := s.IsMember(projectID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotMember
	}
	return nil
}

// AddMember adds the user identified by email to the project. Adding an
// existing member reports ErrAlreadyMember, which callers surface as
// informational, not a failure.
func (s *MemberService) AddMember(projectID uint, email string) (*models.ProjectMember, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var existing models.ProjectMember
	err := s.db.Where("project_id = ? AND user_id = ?", projectID, user.ID).First(&existing).Error
	if err == nil {
		return &existing, ErrAlreadyMember
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := models.ProjectMember{ProjectID: projectID, UserID: user.ID}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}

	return &member, nil
}

// List returns the project's members with user info preloaded.
func (s *MemberService) List(projectID uint) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	err := s.db.Where("project_id = ?", projectID).
		Preload("User").
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}
