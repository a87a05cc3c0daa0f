package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// AuthMW wraps the auth service and session cookie name for middleware
type AuthMW struct {
	authSvc    domain.AuthService
	cookieName string
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(authSvc domain.AuthService, cookieName string) *AuthMW {
	return &AuthMW{
		authSvc:    authSvc,
		cookieName: cookieName,
	}
}

// WithJWT returns the JWT middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.authSvc, mw.cookieName)
}
