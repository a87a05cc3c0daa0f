package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// CasbinMiddleware defines the interface for Casbin authorization middleware
type CasbinMiddleware interface {
	Enforce() gin.HandlerFunc
}

// CasbinMW checks the caller's role against the route pattern
type CasbinMW struct {
	policySvc domain.PolicyService
	audit     domain.AuditLogger
}

// NewCasbinMW creates new casbin middleware wrapper. audit may be nil.
func NewCasbinMW(policySvc domain.PolicyService, audit domain.AuditLogger) *CasbinMW {
	return &CasbinMW{policySvc: policySvc, audit: audit}
}

// Enforce returns the casbin authorization middleware
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
			return
		}

		// Route pattern, so /admin/bookings/:id matches regardless of the id
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		allowed, err := mw.policySvc.CheckPermission(domain.PolicySubject(claims.Role), path, method)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Authorization check failed"})
			return
		}

		if !allowed {
			if mw.audit != nil {
				event := domain.NewAuditEvent(domain.AccessDeniedEvent, claims.AccountID).
					WithEmail(claims.Email).
					WithClientContext(domain.ClientContextFrom(c.Request.Context())).
					WithMetadata("path", path).
					WithMetadata("method", method).
					WithError(domain.ErrInsufficientRole)
				_ = mw.audit.LogEvent(c.Request.Context(), event)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Access Denied"})
			return
		}

		c.Next()
	})
}
