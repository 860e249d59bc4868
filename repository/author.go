// Package repository is the data-access layer. Each method issues a single
// parameterized query against the injected gorm handle; input validation is
// the caller's job.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dgarza/pluma/models"
)

// AuthorRepository runs author queries against the relational store.
type AuthorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates an AuthorRepository bound to db.
func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// List returns all active authors.
func (r *AuthorRepository) List() ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Where("is_active = ?", true).Find(&authors).Error
	return authors, err
}

// Get returns the active author with the given id, or nil when no such row
// exists (soft-deleted authors are invisible here).
func (r *AuthorRepository) Get(id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Insert stores a new active author and returns it with the generated id.
func (r *AuthorRepository) Insert(name, email, image string) (*models.Author, error) {
	author := models.Author{Name: name, Email: email, Image: image, IsActive: true}
	if err := r.db.Create(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// Update rewrites the mutable fields of an active author. The returned count
// is zero when the id is unknown or the author is soft-deleted.
func (r *AuthorRepository) Update(id uint, name, email, image string) (int64, error) {
	res := r.db.Model(&models.Author{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{"name": name, "email": email, "image": image})
	return res.RowsAffected, res.Error
}

// SoftDelete clears the active flag. Already-inactive rows are left alone,
// reported as zero affected rows.
func (r *AuthorRepository) SoftDelete(id uint) (int64, error) {
	res := r.db.Model(&models.Author{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

// Reactivate sets the active flag regardless of its current state.
func (r *AuthorRepository) Reactivate(id uint) (int64, error) {
	res := r.db.Model(&models.Author{}).
		Where("id = ?", id).
		Update("is_active", true)
	return res.RowsAffected, res.Error
}
