package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dgarza/pluma/models"
)

// setupTestDB creates an in-memory SQLite database with foreign keys
// enforced, capped at one connection so every query sees the same store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Author{}, &models.Post{}))
	return db
}

func TestAuthorSoftDeleteLifecycle(t *testing.T) {
	repo := NewAuthorRepository(setupTestDB(t))

	created, err := repo.Insert("Ada Lovelace", "ada@x.com", "http://x.com/i.png")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.True(t, created.IsActive)

	got, err := repo.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada Lovelace", got.Name)

	rows, err := repo.SoftDelete(created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	got, err = repo.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	// already inactive: no-op
	rows, err = repo.SoftDelete(created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)

	rows, err = repo.Reactivate(created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	got, err = repo.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada@x.com", got.Email)

	list, err = repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAuthorUpdateOnlyTouchesActiveRows(t *testing.T) {
	repo := NewAuthorRepository(setupTestDB(t))

	created, err := repo.Insert("Ada Lovelace", "ada@x.com", "http://x.com/i.png")
	require.NoError(t, err)

	rows, err := repo.Update(created.ID, "Ada King", "ada@x.com", "http://x.com/i.png")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	_, err = repo.SoftDelete(created.ID)
	require.NoError(t, err)

	rows, err = repo.Update(created.ID, "Countess", "ada@x.com", "http://x.com/i.png")
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}

func TestPostProjectionHidesInactiveAuthors(t *testing.T) {
	db := setupTestDB(t)
	authors := NewAuthorRepository(db)
	posts := NewPostRepository(db)

	ada, err := authors.Insert("Ada Lovelace", "ada@x.com", "http://x.com/a.png")
	require.NoError(t, err)
	grace, err := authors.Insert("Grace Hopper", "grace@x.com", "http://x.com/g.png")
	require.NoError(t, err)

	adaPost, err := posts.Insert(ada.ID, "Notas analiticas", "Sobre la maquina.", models.CategoryEducativo)
	require.NoError(t, err)
	_, err = posts.Insert(grace.ID, "Compiladores", "Historia del compilador.", models.CategoryInformativo)
	require.NoError(t, err)

	views, err := posts.List()
	require.NoError(t, err)
	assert.Len(t, views, 2)

	_, err = authors.SoftDelete(grace.ID)
	require.NoError(t, err)

	views, err = posts.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Notas analiticas", views[0].Title)
	assert.Equal(t, "Ada Lovelace", views[0].AuthorName)
	assert.Equal(t, "ada@x.com", views[0].AuthorEmail)
	assert.Equal(t, "http://x.com/a.png", views[0].AuthorImage)

	view, err := posts.Get(adaPost.ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, models.CategoryEducativo, view.Category)
}

func TestPostGetReturnsNilForHiddenOrMissing(t *testing.T) {
	db := setupTestDB(t)
	authors := NewAuthorRepository(db)
	posts := NewPostRepository(db)

	ada, err := authors.Insert("Ada Lovelace", "ada@x.com", "http://x.com/a.png")
	require.NoError(t, err)
	post, err := posts.Insert(ada.ID, "Notas", "Texto.", models.CategoryEducativo)
	require.NoError(t, err)

	view, err := posts.Get(9999)
	require.NoError(t, err)
	assert.Nil(t, view)

	_, err = authors.SoftDelete(ada.ID)
	require.NoError(t, err)

	view, err = posts.Get(post.ID)
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestPostUpdateAndDeleteRowCounts(t *testing.T) {
	db := setupTestDB(t)
	authors := NewAuthorRepository(db)
	posts := NewPostRepository(db)

	ada, err := authors.Insert("Ada Lovelace", "ada@x.com", "http://x.com/a.png")
	require.NoError(t, err)
	post, err := posts.Insert(ada.ID, "Notas", "Texto.", models.CategoryEducativo)
	require.NoError(t, err)

	rows, err := posts.Update(post.ID, "Notas nuevas", "Texto nuevo.", models.CategoryActualidad)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = posts.Update(9999, "Notas", "Texto.", models.CategoryEducativo)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)

	rows, err = posts.Delete(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = posts.Delete(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}

func TestPostInsertUnknownAuthorViolatesForeignKey(t *testing.T) {
	posts := NewPostRepository(setupTestDB(t))

	_, err := posts.Insert(9999, "Sin autor", "Texto.", models.CategoryEducativo)
	assert.Error(t, err)
}
