package mocks

import (
	"context"
	"time"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	GenerateFunc func(ctx context.Context, account *domain.Account) (*domain.OTPRequest, error)
	VerifyFunc   func(ctx context.Context, account *domain.Account, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Generate issues a challenge for account
func (m *MockOTPService) Generate(ctx context.Context, account *domain.Account) (*domain.OTPRequest, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, account)
	}
	return &domain.OTPRequest{
		AccountID: account.ID,
		Email:     account.Email,
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil
}

// Verify checks code against the account's challenge
func (m *MockOTPService) Verify(ctx context.Context, account *domain.Account, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, account, code)
	}
	if code != "123456" {
		return domain.ErrOTPInvalid
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
