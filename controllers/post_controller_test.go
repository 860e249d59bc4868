package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgarza/pluma/models"
)

func validPostBody() gin.H {
	return gin.H{
		"title":       "Los excesos de los jugadores",
		"description": "La gran mayoria piensa que esta por encima de la ley.",
		"category":    "De actualidad",
	}
}

func createPost(t *testing.T, r *gin.Engine, authorID uint) models.PostView {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, postPath(authorID), validPostBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var view models.PostView
	decodeJSON(t, w, &view)
	require.NotZero(t, view.ID)
	return view
}

func TestCreatePostAndFetch(t *testing.T) {
	r := setupTestRouter(t)
	author := createAuthor(t, r)

	view := createPost(t, r, author.ID)
	assert.Equal(t, "Los excesos de los jugadores", view.Title)
	assert.Equal(t, "De actualidad", view.Category)
	assert.Equal(t, author.Name, view.AuthorName)
	assert.Equal(t, author.Email, view.AuthorEmail)
	assert.Equal(t, author.Image, view.AuthorImage)

	w := doJSON(t, r, http.MethodGet, postPath(view.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.PostView
	decodeJSON(t, w, &fetched)
	assert.Equal(t, view.ID, fetched.ID)
	assert.Equal(t, view.Title, fetched.Title)
}

func TestCreatePostRejectsUnknownCategory(t *testing.T) {
	r := setupTestRouter(t)
	author := createAuthor(t, r)

	body := validPostBody()
	body["category"] = "Desconocida"
	w := doJSON(t, r, http.MethodPost, postPath(author.ID), body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp fieldErrorsMessage
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Message, 1)
	assert.Equal(t, "category", resp.Message[0].Field)
}

func TestCreatePostRejectsTitleBounds(t *testing.T) {
	r := setupTestRouter(t)
	author := createAuthor(t, r)

	body := validPostBody()
	body["title"] = "ab"
	w := doJSON(t, r, http.MethodPost, postPath(author.ID), body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body["title"] = "una cadena que definitivamente supera los cuarenta y cinco"
	w = doJSON(t, r, http.MethodPost, postPath(author.ID), body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreatePostUnknownAuthorFailsAtStore(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/posts/9999", validPostBody())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPostValidation(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/posts/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/posts/9999", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp stringMessage
	decodeJSON(t, w, &resp)
	assert.Equal(t, postNotFoundMessage, resp.Message)
}

func TestUpdatePost(t *testing.T) {
	r := setupTestRouter(t)
	author := createAuthor(t, r)
	view := createPost(t, r, author.ID)

	body := validPostBody()
	body["title"] = "Titulo corregido"
	body["category"] = "Educativo"
	w := doJSON(t, r, http.MethodPut, postPath(view.ID), body)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.PostView
	decodeJSON(t, w, &updated)
	assert.Equal(t, view.ID, updated.ID)
	assert.Equal(t, "Titulo corregido", updated.Title)
	assert.Equal(t, "Educativo", updated.Category)
}

func TestUpdatePostUnknownIDAnswers422(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/posts/9999", validPostBody())
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp stringMessage
	decodeJSON(t, w, &resp)
	assert.Equal(t, postNotFoundMessage, resp.Message)
}

func TestDeletePost(t *testing.T) {
	r := setupTestRouter(t)
	author := createAuthor(t, r)
	view := createPost(t, r, author.ID)

	w := doJSON(t, r, http.MethodDelete, postPath(view.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var confirmation stringMessage
	decodeJSON(t, w, &confirmation)
	assert.Equal(t, "ok", confirmation.Message)

	w = doJSON(t, r, http.MethodGet, postPath(view.ID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteMissingPostAnswers422(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/posts/9999", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp stringMessage
	decodeJSON(t, w, &resp)
	assert.Equal(t, postNotDeletedMessage, resp.Message)
}

func TestListPostsHidesSoftDeletedAuthors(t *testing.T) {
	r := setupTestRouter(t)

	ada := createAuthor(t, r)
	graceBody := gin.H{"name": "Grace Hopper", "email": "grace@x.com", "image": "http://x.com/g.png"}
	w := doJSON(t, r, http.MethodPost, "/api/authors", graceBody)
	require.Equal(t, http.StatusOK, w.Code)
	var grace models.Author
	decodeJSON(t, w, &grace)

	createPost(t, r, ada.ID)
	createPost(t, r, grace.ID)

	var list []models.PostView
	w = doJSON(t, r, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &list)
	assert.Len(t, list, 2)

	w = doJSON(t, r, http.MethodDelete, authorPath(grace.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, ada.Name, list[0].AuthorName)
}
