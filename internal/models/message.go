package models

import "time"

// Message is one entry in a project's chat log. Messages are append-only:
// never edited or deleted individually, removed only with their project.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"index;not null" json:"project_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"` // assigned server-side at write time
}

func (Message) TableName() string { return "messages" }
