package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/clinicsvc/domain"
)

// StatusFor maps an error kind to its HTTP status
func StatusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindInvalidToken, domain.KindInvalidCredentials:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindTooManyAttempts:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": msg}. Internal failures never expose their text.
func respondError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(StatusFor(kind), gin.H{"error": err.Error()})
}

// bearer returns the token the auth middleware stored for this request
func bearer(c *gin.Context) string {
	return c.GetString("token")
}
