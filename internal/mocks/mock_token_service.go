package mocks

import (
	"fmt"
	"time"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateSessionTokenFunc func(account *domain.Account) (string, *domain.TokenClaims, error)
	ValidateSessionTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateSessionToken mints a token for account
func (m *MockTokenService) GenerateSessionToken(account *domain.Account) (string, *domain.TokenClaims, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc(account)
	}
	now := time.Now()
	claims := &domain.TokenClaims{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		TokenID:   "mock_jti",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(24 * time.Hour).Unix(),
	}
	return fmt.Sprintf("mock_session_token_%d", account.ID), claims, nil
}

// ValidateSessionToken validates token
func (m *MockTokenService) ValidateSessionToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateSessionTokenFunc != nil {
		return m.ValidateSessionTokenFunc(token)
	}
	if token == "" {
		return nil, domain.ErrTokenMissing
	}
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
