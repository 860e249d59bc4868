package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dgarza/pluma/repository"
	"github.com/dgarza/pluma/schemas"
	"github.com/dgarza/pluma/utils"
)

// Historical contract: missing authors on read paths answer 200 with an
// explanatory message instead of a 4xx. Kept for compatibility.
const authorNotFoundMessage = "author not found in the database"

// AuthorController handles the author CRUD endpoints.
type AuthorController struct {
	repo *repository.AuthorRepository
}

// NewAuthorController creates a new AuthorController instance.
func NewAuthorController(repo *repository.AuthorRepository) *AuthorController {
	return &AuthorController{repo: repo}
}

// List returns all active authors.
func (a *AuthorController) List(ctx *gin.Context) {
	authors, err := a.repo.List()
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	utils.Entity(ctx, authors)
}

// Get returns one active author by id.
func (a *AuthorController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusOK, authorNotFoundMessage)
		return
	}
	author, err := a.repo.Get(id)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	if author == nil {
		utils.Message(ctx, http.StatusOK, authorNotFoundMessage)
		return
	}
	utils.Entity(ctx, author)
}

// Create validates the payload, inserts the author, and responds with the
// stored row refetched by its generated id.
func (a *AuthorController) Create(ctx *gin.Context) {
	var payload schemas.AuthorPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.ValidationError(ctx, err.Error())
		return
	}
	if errs := schemas.ValidateAuthor(payload); errs != nil {
		utils.ValidationError(ctx, errs)
		return
	}

	created, err := a.repo.Insert(*payload.Name, *payload.Email, *payload.Image)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	author, err := a.repo.Get(created.ID)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	if author == nil {
		utils.Message(ctx, http.StatusOK, authorNotFoundMessage)
		return
	}
	utils.Entity(ctx, author)
}

// Update rewrites an active author's fields and responds with the refetched
// row. An unknown or soft-deleted id yields the not-found message; the
// refetch is never dereferenced blindly.
func (a *AuthorController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Message(ctx, http.StatusOK, authorNotFoundMessage)
		return
	}

	var payload schemas.AuthorPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.ValidationError(ctx, err.Error())
		return
	}
	if errs := schemas.ValidateAuthor(payload); errs != nil {
		utils.ValidationError(ctx, errs)
		return
	}

	if _, err := a.repo.Update(id, *payload.Name, *payload.Email, *payload.Image); err != nil {
		utils.StoreError(ctx, err)
		return
	}
	author, err := a.repo.Get(id)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	if author == nil {
		utils.Message(ctx, http.StatusOK, authorNotFoundMessage)
		return
	}
	utils.Entity(ctx, author)
}

// Delete soft-deletes an author. The confirmation does not depend on
// whether a row was actually flipped.
func (a *AuthorController) Delete(ctx *gin.Context) {
	id, ferr := schemas.ValidateID(ctx.Param("id"))
	if ferr != nil {
		utils.ValidationError(ctx, ferr)
		return
	}
	if _, err := a.repo.SoftDelete(id); err != nil {
		utils.StoreError(ctx, err)
		return
	}
	utils.Message(ctx, http.StatusOK, "ok")
}

// Discharge reactivates a soft-deleted author and responds with the
// restored row.
func (a *AuthorController) Discharge(ctx *gin.Context) {
	id, ferr := schemas.ValidateID(ctx.Param("id"))
	if ferr != nil {
		utils.ValidationError(ctx, ferr)
		return
	}
	if _, err := a.repo.Reactivate(id); err != nil {
		utils.StoreError(ctx, err)
		return
	}
	author, err := a.repo.Get(id)
	if err != nil {
		utils.StoreError(ctx, err)
		return
	}
	if author == nil {
		utils.Message(ctx, http.StatusOK, authorNotFoundMessage)
		return
	}
	utils.Entity(ctx, author)
}

// parseID converts a path parameter into a positive id. Callers that must
// report malformed ids as validation failures use schemas.ValidateID
// instead; read paths treat them as unknown rows.
func parseID(raw string) (uint, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}
