package handlers

import (
	"net/http"

	"oneonone-backend/internal/auth"
	apperrors "oneonone-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Code  string `json:"code,omitempty" example:"MEETING_CONFLICT"`
}

// respondError maps service-layer errors to HTTP status codes. Domain rule
// errors carry their machine-readable code alongside the message.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsBadRequest(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: apperrors.BadRequestCode(err)})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// callerIdentity extracts the authenticated identity set by the auth
// middleware. A missing identity means the route was wired without
// RequireAuth; the request is rejected rather than served anonymously.
func callerIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return auth.Identity{}, false
	}
	return identity, true
}
