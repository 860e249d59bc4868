package models

import "time"

// Author represents a post author. Authors are never removed physically:
// clearing IsActive hides them from every read path, and the discharge
// operation sets it back.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Image     string    `gorm:"size:512;not null" json:"image"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `json:"-"`
}
