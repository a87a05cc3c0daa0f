package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/mocks"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authSvc := mocks.NewMockAuthService()
	authSvc.AuthenticateFunc = func(token string) (*domain.TokenClaims, error) {
		switch token {
		case "":
			return nil, domain.ErrTokenMissing
		case "good":
			return &domain.TokenClaims{AccountID: 4, Email: "a@b.com", Role: domain.RoleUser}, nil
		case "old":
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	tests := []struct {
		name           string
		header         string
		cookie         string
		expectedStatus int
		expectedError  string
	}{
		{name: "bearer header", header: "Bearer good", expectedStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer good", expectedStatus: http.StatusOK},
		{name: "cookie", cookie: "good", expectedStatus: http.StatusOK},
		{name: "header wins over cookie", header: "Bearer bad", cookie: "good", expectedStatus: http.StatusUnauthorized, expectedError: "Invalid token"},
		{name: "no credential", expectedStatus: http.StatusUnauthorized, expectedError: "Authentication required"},
		{name: "not bearer", header: "Basic abc", expectedStatus: http.StatusUnauthorized, expectedError: "Invalid authorization header format"},
		{name: "expired", header: "Bearer old", expectedStatus: http.StatusUnauthorized, expectedError: "Token expired"},
		{name: "tampered", header: "Bearer bad", expectedStatus: http.StatusUnauthorized, expectedError: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/p", NewAuthMW(authSvc, "token").WithJWT(), func(c *gin.Context) {
				claims, ok := CurrentClaims(c)
				require.True(t, ok)
				assert.Equal(t, uint(4), c.GetUint(ContextAccountID))
				assert.Equal(t, domain.RoleUser, c.GetString(ContextRole))
				c.JSON(http.StatusOK, gin.H{"email": claims.Email})
			})

			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.JSONEq(t, `{"success":false,"error":"`+tt.expectedError+`"}`, w.Body.String())
			}
		})
	}
}

func TestCurrentClaims_Absent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentClaims(c)
	assert.False(t, ok)

	c.Set(ContextClaims, "not claims")
	_, ok = CurrentClaims(c)
	assert.False(t, ok)
}
