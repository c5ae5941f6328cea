package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/clinicsvc/domain"
)

// CasbinMW checks the route policy for the role every authenticated doctor holds
type CasbinMW struct {
	policySvc domain.PolicyService
	role      string
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(policySvc domain.PolicyService, role string) *CasbinMW {
	return &CasbinMW{policySvc: policySvc, role: role}
}

// Enforce must run after AuthMW.WithJWT
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextDoctorID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Doctor not found in token"})
			return
		}

		allowed, err := mw.policySvc.CheckPermission(mw.role, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access Denied"})
			return
		}

		c.Next()
	}
}
