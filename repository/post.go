package repository

import (
	"gorm.io/gorm"

	"github.com/dgarza/pluma/models"
)

const postViewColumns = "posts.id, posts.title, posts.description, posts.category, posts.created_at, " +
	"authors.name AS author_name, authors.email AS author_email, authors.image AS author_image"

// PostRepository runs post queries against the relational store.
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a PostRepository bound to db.
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List returns the joined post+author projection for every post whose
// author is active.
func (r *PostRepository) List() ([]models.PostView, error) {
	var views []models.PostView
	err := r.db.Table("posts").
		Select(postViewColumns).
		Joins("JOIN authors ON authors.id = posts.author_id").
		Where("authors.is_active = ?", true).
		Scan(&views).Error
	return views, err
}

// Get returns the projection for one post, or nil when the post does not
// exist or its author is soft-deleted.
func (r *PostRepository) Get(id uint) (*models.PostView, error) {
	var views []models.PostView
	err := r.db.Table("posts").
		Select(postViewColumns).
		Joins("JOIN authors ON authors.id = posts.author_id").
		Where("posts.id = ? AND authors.is_active = ?", id, true).
		Limit(1).
		Scan(&views).Error
	if err != nil || len(views) == 0 {
		return nil, err
	}
	return &views[0], nil
}

// Insert stores a new post tied to authorID and returns it with the
// generated id. A foreign-key violation surfaces as a store error when the
// author row does not exist.
func (r *PostRepository) Insert(authorID uint, title, description, category string) (*models.Post, error) {
	post := models.Post{
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Category:    category,
	}
	if err := r.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update rewrites title, description, and category for the given post id.
// Zero affected rows means the post does not exist.
func (r *PostRepository) Update(id uint, title, description, category string) (int64, error) {
	res := r.db.Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "description": description, "category": category})
	return res.RowsAffected, res.Error
}

// Delete removes the post physically. Zero affected rows means the post did
// not exist.
func (r *PostRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Post{}, id)
	return res.RowsAffected, res.Error
}
