package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dgarza/pluma/repository"
	"github.com/dgarza/pluma/schemas"
	"github.com/dgarza/pluma/utils"
)

// Unlike authors, the post endpoints historically report missing rows as
// 422. Kept for compatibility.
const (
	postNotFoundMessage     = "no post found with the given id"
	postNotDeletedMessage   = "the delete request was not processed"
	postDeletedConfirmation = "ok"
)

// PostController handles the post CRUD endpoints.
type PostController struct {
	repo *repository.PostRepository
}

// NewPostController creates a new PostController instance.
func NewPostController(repo *repository.PostRepository) *PostController {
	return &PostController{repo: repo}
}

// List returns the post+author projection for every post whose author is
// active.
func (p *PostController) List(ctx *gin.Context) {
	views, err := p.repo.List()
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	utils.Entity(ctx, views)
}

// Get returns one post projection by id.
func (p *PostController) Get(ctx *gin.Context) {
	id, ferr := schemas.ValidateID(ctx.Param("id"))
	if ferr != nil {
		utils.ValidationError(ctx, ferr)
		return
	}
	view, err := p.repo.Get(id)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	if view == nil {
		utils.Message(ctx, http.StatusUnprocessableEntity, postNotFoundMessage)
		return
	}
	utils.Entity(ctx, view)
}

// Create validates the author id and payload, inserts the post, and
// responds with the projection refetched by the generated id. A missing
// author row fails at the store through the foreign key.
func (p *PostController) Create(ctx *gin.Context) {
	authorID, ferr := schemas.ValidateID(ctx.Param("authorId"))
	if ferr != nil {
		utils.ValidationError(ctx, ferr)
		return
	}

	var payload schemas.PostPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.ValidationError(ctx, err.Error())
		return
	}
	if errs := schemas.ValidatePost(payload); errs != nil {
		utils.ValidationError(ctx, errs)
		return
	}

	title := utils.Sanitize(*payload.Title)
	description := utils.Sanitize(*payload.Description)

	created, err := p.repo.Insert(authorID, title, description, *payload.Category)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	// The refetch joins on an active author, so a post created for a
	// soft-deleted author is immediately invisible.
	view, err := p.repo.Get(created.ID)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	if view == nil {
		utils.Message(ctx, http.StatusUnprocessableEntity, postNotFoundMessage)
		return
	}
	utils.Entity(ctx, view)
}

// Update rewrites title, description, and category, then responds with the
// refetched projection. Existence is checked on the refetch rather than
// trusting the affected-row count.
func (p *PostController) Update(ctx *gin.Context) {
	id, ferr := schemas.ValidateID(ctx.Param("id"))
	if ferr != nil {
		utils.ValidationError(ctx, ferr)
		return
	}

	var payload schemas.PostPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.ValidationError(ctx, err.Error())
		return
	}
	if errs := schemas.ValidatePost(payload); errs != nil {
		utils.ValidationError(ctx, errs)
		return
	}

	title := utils.Sanitize(*payload.Title)
	description := utils.Sanitize(*payload.Description)

	if _, err := p.repo.Update(id, title, description, *payload.Category); err != nil {
		utils.StoreError(ctx, err)
		return
	}
	view, err := p.repo.Get(id)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	if view == nil {
		utils.Message(ctx, http.StatusUnprocessableEntity, postNotFoundMessage)
		return
	}
	utils.Entity(ctx, view)
}

// Delete removes a post physically. Zero affected rows means nothing was
// deleted and is reported as 422.
func (p *PostController) Delete(ctx *gin.Context) {
	id, ferr := schemas.ValidateID(ctx.Param("id"))
	if ferr != nil {
		utils.ValidationError(ctx, ferr)
		return
	}
	rows, err := p.repo.Delete(id)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	if rows == 0 {
		utils.Message(ctx, http.StatusUnprocessableEntity, postNotDeletedMessage)
		return
	}
	utils.Message(ctx, http.StatusOK, postDeletedConfirmation)
}
