package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/internal/domain"
)

// respondError translates domain errors into HTTP status codes. Policy
// violations map to 403 rather than 404 so callers can tell a missing
// article from a forbidden one.
func respondError(c *gin.Context, err error) {
	var netErr *domain.NetworkError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPolicyViolation):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTimedOut):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "upstream service timed out"})
	case errors.As(err, &netErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
