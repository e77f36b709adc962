package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cookenu/internal/common"
)

// statusFromError is the single translation point from error kind to HTTP
// status. User and recipe operations share it, so the mapping can never
// diverge between the two resources.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrorMissingToken),
		errors.Is(err, common.ErrorInvalidToken),
		errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorSelfDelete),
		errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an error response. Policy and validation failures
// surface their human-readable reason; anything unclassified becomes a
// generic message so storage detail never leaks.
func (s *Server) writeError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(status, gin.H{"message": "Something went wrong"})
		return
	}
	c.JSON(status, gin.H{"message": common.Reason(err)})
}
