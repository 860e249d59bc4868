package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message writes {"message": ...} with the given status. The message is a
// plain string for store failures and confirmations, or a list of field
// errors for validation failures.
func Message(ctx *gin.Context, status int, message interface{}) {
	ctx.JSON(status, gin.H{"message": message})
}

// Entity writes the payload verbatim with HTTP 200.
func Entity(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// ValidationError reports malformed input as HTTP 422.
func ValidationError(ctx *gin.Context, detail interface{}) {
	Message(ctx, http.StatusUnprocessableEntity, detail)
}

// StoreError reports a persistence failure. The original API mapped every
// store-level failure to 404 with the raw error text; that contract is kept
// for compatibility.
func StoreError(ctx *gin.Context, err error) {
	Message(ctx, http.StatusNotFound, err.Error())
}
