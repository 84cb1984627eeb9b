package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/internal/types"
)

// respondError renders a service failure the way the API promises: field
// keyed maps for validation errors, {key: message} objects for status
// errors, and an opaque 500 for everything else.
func respondError(c *gin.Context, err error) {
	var verr types.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, verr)
		return
	}

	var serr *types.StatusError
	if errors.As(err, &serr) {
		c.JSON(statusForKind(serr.Kind), gin.H{serr.Key: serr.Message})
		return
	}

	log.Printf("internal error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func statusForKind(kind types.ErrorKind) int {
	switch kind {
	case types.KindUnauthenticated:
		return http.StatusUnauthorized
	case types.KindForbidden:
		return http.StatusForbidden
	case types.KindNotFound:
		return http.StatusNotFound
	case types.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
