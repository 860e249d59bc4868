package models

import "time"

// Post categories accepted by the API. The set is fixed; anything else is
// rejected during validation.
const (
	CategoryInformativo     = "Informativo"
	CategoryEducativo       = "Educativo"
	CategoryPublicitario    = "Publicitario"
	CategoryConcientizacion = "De concientizacion"
	CategoryActualidad      = "De actualidad"
	CategoryTerceros        = "De terceros"
)

// Post belongs to exactly one author. Posts are hard-deleted; visibility of
// reads still depends on the owning author being active.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"index;not null" json:"author_id"`
	Title       string    `gorm:"size:45;not null" json:"title"`
	Description string    `gorm:"type:mediumtext" json:"description"`
	Category    string    `gorm:"size:32;not null" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Author      Author    `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`
}

// PostView is the display projection of a post joined with its author, the
// shape returned by the post read endpoints.
type PostView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	AuthorImage string    `json:"author_image"`
}
