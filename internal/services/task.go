package services

import (
	"strconv"
	"strings"

	"github.com/synergysphere/synergysphere/internal/models"
	"gorm.io/gorm"
)

type TaskService struct {
	db      *gorm.DB
	members *MemberService
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db, members: NewMemberService(db)}
}

type CreateTaskRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
	AssigneeID  string `form:"assignee_id"` // optional user id
}

// Create adds a task to the project's board. New tasks always start in To-Do;
// an assignee, if given, must reference an existing user.
func (s *TaskService) Create(projectID uint, req *CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, newValidationError("Task title is required")
	}

	var assigneeID *uint
	if raw := strings.TrimSpace(req.AssigneeID); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, newValidationError("Invalid assignee")
		}
		id := uint(parsed)

		var count int64
		if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, newValidationError("Assignee does not exist")
		}
		assigneeID = &id
	}

	task := models.Task{
		ProjectID:   projectID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      models.StatusTodo,
		DueDate:     strings.TrimSpace(req.DueDate),
		AssigneeID:  assigneeID,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// GetByID returns a task with its assignee preloaded.
func (s *TaskService) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Preload("Assignee").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus moves a task between board columns. The project is re-derived
// from the task row, never trusted from the caller, and only the three
// canonical literals are admitted; anything else leaves the task unchanged.
func (s *TaskService) UpdateStatus(taskID uint, status string, actingUserID uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		return nil, err
	}

	if err := s.members.RequireMembership(task.ProjectID, actingUserID); err != nil {
		return nil, err
	}

	if !models.ValidStatus(status) {
		return nil, newValidationError("Invalid status")
	}

	if err := s.db.Model(&task).Update("status", status).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListByProject returns all tasks on the project's board.
func (s *TaskService) ListByProject(projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("project_id = ?", projectID).
		Preload("Assignee").
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

// ListByAssignee returns the tasks assigned to the user across all projects.
func (s *TaskService) ListByAssignee(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("assignee_id = ?", userID).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

// CheckAccess exposes the membership gate for handlers that work from a
// task id rather than a project id.
func (s *TaskService) CheckAccess(task *models.Task, userID uint) error {
	return s.members.RequireMembership(task.ProjectID, userID)
}
