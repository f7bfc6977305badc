package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an authenticated user in the system.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Email          string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name           string         `gorm:"size:255" json:"name"`
	Phone          string         `gorm:"size:32" json:"phone,omitempty"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	RenditionsUsed int            `gorm:"default:0" json:"renditions_used"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Designs []Design `json:"designs,omitempty"`
}

// Design is a saved AI-rendered design for one (user, budget, space type)
// combination. Saving again for the same combination replaces the prior row,
// so the triple carries a composite unique index.
type Design struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_budget_space" json:"user_id"`
	Budget    int    `gorm:"not null;uniqueIndex:idx_user_budget_space" json:"budget"`
	SpaceType string `gorm:"size:32;not null;uniqueIndex:idx_user_budget_space" json:"space_type"`

	RenderURL string    `gorm:"size:512;not null" json:"render_url"`
	Prompt    string    `gorm:"type:text" json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
