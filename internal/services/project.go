package services

import (
	"strings"
	"time"

	"github.com/synergysphere/synergysphere/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type CreateProjectRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Tags        string `form:"tags"`
	Manager     string `form:"manager"`
	Deadline    string `form:"deadline"` // yyyy-mm-dd or empty
	Priority    string `form:"priority"`
	ImageURL    string `form:"image_url"`
}

type UpdateProjectRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Tags        string `form:"tags"`
	Manager     string `form:"manager"`
	Deadline    string `form:"deadline"`
	Priority    string `form:"priority"`
}

// ListForUser returns the projects the user is a member of, newest first.
func (s *ProjectService) ListForUser(userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}

// GetByID returns a project by ID.
func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Create validates the form fields and creates the project together with the
// creator's membership in one transaction, so the creator is never locked out
// of their own project.
func (s *ProjectService) Create(req *CreateProjectRequest, userID uint) (*models.Project, error) {
	fields, err := normalizeProjectFields(req.Name, req.Deadline, req.Priority)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		Name:        fields.name,
		Description: strings.TrimSpace(req.Description),
		Tags:        strings.TrimSpace(req.Tags),
		Manager:     strings.TrimSpace(req.Manager),
		Deadline:    fields.deadline,
		Priority:    fields.priority,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CreatedBy:   userID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		member := models.ProjectMember{ProjectID: project.ID, UserID: userID}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// Update applies the same field validation as Create and stamps updated_at.
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}

	fields, err := normalizeProjectFields(req.Name, req.Deadline, req.Priority)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        fields.name,
		"description": strings.TrimSpace(req.Description),
		"tags":        strings.TrimSpace(req.Tags),
		"manager":     strings.TrimSpace(req.Manager),
		"deadline":    fields.deadline,
		"priority":    fields.priority,
	}

	if err := s.db.Model(&project).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Delete removes the project and everything scoped to it in one transaction:
// tasks, memberships and messages go with the project or not at all.
func (s *ProjectService) Delete(id uint) error {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

type projectFields struct {
	name     string
	deadline *time.Time
	priority string
}

// normalizeProjectFields enforces the shared create/update field rules:
// name required, empty deadline becomes null, priority defaults to Medium
// and must be a recognized literal.
func normalizeProjectFields(name, deadline, priority string) (*projectFields, error) {
	f := &projectFields{}

	f.name = strings.TrimSpace(name)
	if f.name == "" {
		return nil, newValidationError("Project name is required")
	}

	if d := strings.TrimSpace(deadline); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, newValidationError("Deadline must be a valid date (yyyy-mm-dd)")
		}
		f.deadline = &parsed
	}

	f.priority = strings.TrimSpace(priority)
	if f.priority == "" {
		f.priority = models.PriorityMedium
	}
	if !models.ValidPriority(f.priority) {
		return nil, newValidationError("Invalid priority")
	}

	return f, nil
}
