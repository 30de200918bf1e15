package models

import "time"

// Task statuses form a closed set; an update with any other literal fails
// validation and leaves the stored status unchanged.
const (
	StatusTodo       = "To-Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// ValidStatus reports whether s is one of the recognized status literals.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

// Task is a unit of work on a project's board.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"index;not null" json:"project_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:20;default:'To-Do'" json:"status"`
	DueDate     string    `gorm:"size:20" json:"due_date"` // yyyy-mm-dd, free-form
	AssigneeID  *uint     `json:"assignee_id"`
	Assignee    *User     `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }
