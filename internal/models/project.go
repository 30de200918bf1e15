package models

import "time"

// Project priorities form a closed set; unknown values are rejected at the
// boundary rather than stored.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// ValidPriority reports whether p is one of the recognized priority literals.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Project is the root of the collaboration hierarchy. Tasks, memberships and
// messages belong to exactly one project and are removed with it.
type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Tags        string     `gorm:"size:500" json:"tags"`
	Manager     string     `gorm:"size:120" json:"manager"`
	Deadline    *time.Time `json:"deadline"`
	Priority    string     `gorm:"size:20;default:Medium" json:"priority"`
	ImageURL    string     `gorm:"size:500" json:"image_url"`
	CreatedBy   uint       `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }
