package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// Context keys set by AuthMiddleware
const (
	ContextAccountID = "account_id"
	ContextRole      = "account_role"
	ContextEmail     = "account_email"
	ContextClaims    = "claims"
)

// AuthMiddleware creates authentication middleware. The session token is read
// from the Authorization header first and from cookieName second.
func AuthMiddleware(authSvc domain.AuthService, cookieName string) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, ok := ExtractToken(c, cookieName)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid authorization header format"})
			return
		}

		claims, err := authSvc.Authenticate(token)
		if err != nil {
			msg := "Invalid token"
			switch {
			case errors.Is(err, domain.ErrTokenMissing):
				msg = "Authentication required"
			case errors.Is(err, domain.ErrTokenExpired):
				msg = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextClaims, claims)

		c.Next()
	})
}

// ExtractToken returns "" with ok=true when no credential was sent at all, so
// the auth service reports it as missing. A malformed header is not ok.
func ExtractToken(c *gin.Context, cookieName string) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil {
			return cookie, true
		}
	}
	return "", true
}

// CurrentClaims returns the identity stored by AuthMiddleware
func CurrentClaims(c *gin.Context) (*domain.TokenClaims, bool) {
	v, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*domain.TokenClaims)
	return claims, ok && claims != nil
}
