package mocks

import (
	"context"
	"time"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SendOTPFunc      func(ctx context.Context, email string) error
	VerifyOTPFunc    func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	AuthenticateFunc func(token string) (*domain.TokenClaims, error)
	GetProfileFunc   func(ctx context.Context, accountID uint) (*domain.Account, error)
	UpdatePhoneFunc  func(ctx context.Context, accountID uint, phone string) (*domain.Account, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// SendOTP issues a challenge
func (m *MockAuthService) SendOTP(ctx context.Context, email string) error {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(ctx, email)
	}
	return nil
}

// VerifyOTP verifies a challenge
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	// Default behavior: a successful login
	return &domain.AuthResult{
		Account:   &domain.Account{ID: 1, Email: email, Role: domain.RoleUser},
		Token:     "mock_session_token",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}, nil
}

// Authenticate validates a session token
func (m *MockAuthService) Authenticate(token string) (*domain.TokenClaims, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(token)
	}
	if token == "" {
		return nil, domain.ErrTokenMissing
	}
	return &domain.TokenClaims{AccountID: 1, Email: "user@example.com", Role: domain.RoleUser}, nil
}

// GetProfile returns the account for accountID
func (m *MockAuthService) GetProfile(ctx context.Context, accountID uint) (*domain.Account, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, accountID)
	}
	return &domain.Account{ID: accountID, Email: "user@example.com", Role: domain.RoleUser}, nil
}

// UpdatePhone sets the contact phone
func (m *MockAuthService) UpdatePhone(ctx context.Context, accountID uint, phone string) (*domain.Account, error) {
	if m.UpdatePhoneFunc != nil {
		return m.UpdatePhoneFunc(ctx, accountID, phone)
	}
	return &domain.Account{ID: accountID, Email: "user@example.com", Phone: phone, Role: domain.RoleUser}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
