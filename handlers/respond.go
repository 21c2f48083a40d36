// File: handlers/respond.go
package handlers

import (
	"net/http"

	"slotify/domain"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps a domain error to its HTTP status code. Anything
// unclassified is treated as internal.
func statusFor(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsForbidden(err):
		return http.StatusForbidden
	case domain.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error as JSON using the domain taxonomy. Internal
// errors are logged with their cause but reported generically.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utils.GetLogger().Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// contextUserID returns the authenticated user's ID set by the auth
// middleware, aborting with 401 if it is missing.
func contextUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		utils.GetLogger().Error("Invalid user ID type in context", zap.Any("userID", val))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return "", false
	}
	return id, true
}

// contextRole returns the authenticated user's role set by the auth middleware.
func contextRole(c *gin.Context) string {
	if val, ok := c.Get("role"); ok {
		if r, ok := val.(string); ok {
			return r
		}
	}
	return ""
}
