package mocks

import (
	"context"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockOTPThrottle implements domain.OTPThrottle interface for testing
type MockOTPThrottle struct {
	CanResendFunc       func(ctx context.Context, email string) (bool, int64, error)
	MarkSentFunc        func(ctx context.Context, email string) error
	RegisterAttemptFunc func(ctx context.Context, email string) (int64, error)
	ResetFunc           func(ctx context.Context, email string) error
}

// NewMockOTPThrottle creates a new MockOTPThrottle that never throttles
func NewMockOTPThrottle() *MockOTPThrottle {
	return &MockOTPThrottle{}
}

func (m *MockOTPThrottle) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email)
	}
	return true, 0, nil
}

func (m *MockOTPThrottle) MarkSent(ctx context.Context, email string) error {
	if m.MarkSentFunc != nil {
		return m.MarkSentFunc(ctx, email)
	}
	return nil
}

func (m *MockOTPThrottle) RegisterAttempt(ctx context.Context, email string) (int64, error) {
	if m.RegisterAttemptFunc != nil {
		return m.RegisterAttemptFunc(ctx, email)
	}
	return 1, nil
}

func (m *MockOTPThrottle) Reset(ctx context.Context, email string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, email)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPThrottle = (*MockOTPThrottle)(nil)
