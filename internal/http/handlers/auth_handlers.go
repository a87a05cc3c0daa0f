package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/http/middleware"
)

// CookieSettings controls the session cookie written on login
type CookieSettings struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandlers handles the OTP login flow and the caller's profile
type AuthHandlers struct {
	authSvc domain.AuthService
	audit   domain.AuditLogger
	cookie  CookieSettings
}

// NewAuthHandlers creates new auth handlers. audit may be nil.
func NewAuthHandlers(authSvc domain.AuthService, audit domain.AuditLogger, cookie CookieSettings) *AuthHandlers {
	if cookie.Name == "" {
		cookie.Name = "token"
	}
	return &AuthHandlers{
		authSvc: authSvc,
		audit:   audit,
		cookie:  cookie,
	}
}

// SendOTPRequest represents an OTP request
type SendOTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest represents an OTP submission
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	Phone string `json:"phone"`
}

// SendOTP handles OTP generation and delivery
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide a valid email address")
		return
	}

	if err := h.authSvc.SendOTP(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmail):
			fail(c, http.StatusBadRequest, "Please provide a valid email address")
		case errors.Is(err, domain.ErrOTPResendLimit):
			fail(c, http.StatusTooManyRequests, "Please wait before requesting another OTP")
		default:
			fail(c, http.StatusInternalServerError, "Failed to send OTP")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent to your email",
	})
}

// VerifyOTP handles OTP verification and login
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid OTP or OTP expired")
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPInvalid):
			fail(c, http.StatusBadRequest, "Invalid OTP or OTP expired")
		case errors.Is(err, domain.ErrOTPMaxAttempts):
			fail(c, http.StatusTooManyRequests, "Maximum attempts exceeded, request a new OTP")
		default:
			fail(c, http.StatusInternalServerError, "Failed to verify OTP")
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, result.Token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user": gin.H{
			"id":    result.Account.ID,
			"email": result.Account.Email,
		},
	})
}

// Logout clears the session cookie. Tokens are stateless, so a copy held
// elsewhere stays valid until it expires.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if h.audit != nil {
		if token, ok := middleware.ExtractToken(c, h.cookie.Name); ok && token != "" {
			if claims, err := h.authSvc.Authenticate(token); err == nil {
				event := domain.NewAuditEvent(domain.AccountLogoutEvent, claims.AccountID).
					WithEmail(claims.Email).
					WithClientContext(domain.ClientContextFrom(c.Request.Context())).
					WithMetadata("jti", claims.TokenID)
				_ = h.audit.LogEvent(c.Request.Context(), event)
			}
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me handles getting the caller's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	account, err := h.authSvc.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			fail(c, http.StatusNotFound, "Account not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profileJSON(account)})
}

// UpdateMe sets the caller's SMS contact number
func (h *AuthHandlers) UpdateMe(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.authSvc.UpdatePhone(c.Request.Context(), id, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPhone):
			fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			fail(c, http.StatusNotFound, "Account not found")
		default:
			fail(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profileJSON(account)})
}

func profileJSON(a *domain.Account) gin.H {
	return gin.H{
		"id":        a.ID,
		"email":     a.Email,
		"phone":     a.Phone,
		"role":      a.Role,
		"createdAt": a.CreatedAt,
	}
}

