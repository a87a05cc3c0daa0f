package mocks

import (
	"context"
	"time"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	FindByEmailFunc      func(ctx context.Context, email string) (*domain.Account, error)
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.Account, error)
	FindOrCreateFunc     func(ctx context.Context, email, role string) (*domain.Account, error)
	SetChallengeFunc     func(ctx context.Context, accountID uint, challengeHash string, expiresAt time.Time) error
	ConsumeChallengeFunc func(ctx context.Context, accountID uint, challengeHash string, now time.Time) (bool, error)
	ClearChallengeFunc   func(ctx context.Context, accountID uint) error
	UpdatePhoneFunc      func(ctx context.Context, accountID uint, phone string) error
	ListFunc             func(ctx context.Context) ([]*domain.Account, error)
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// FindByEmail finds an account by email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrAccountNotFound
}

// FindByID finds an account by ID
func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrAccountNotFound
}

// FindOrCreate returns the account for email, creating it if needed
func (m *MockAccountRepository) FindOrCreate(ctx context.Context, email, role string) (*domain.Account, error) {
	if m.FindOrCreateFunc != nil {
		return m.FindOrCreateFunc(ctx, email, role)
	}
	// Default behavior: a fresh account
	return &domain.Account{ID: 1, Email: email, Role: role}, nil
}

// SetChallenge stores a challenge
func (m *MockAccountRepository) SetChallenge(ctx context.Context, accountID uint, challengeHash string, expiresAt time.Time) error {
	if m.SetChallengeFunc != nil {
		return m.SetChallengeFunc(ctx, accountID, challengeHash, expiresAt)
	}
	return nil
}

// ConsumeChallenge clears a matching challenge
func (m *MockAccountRepository) ConsumeChallenge(ctx context.Context, accountID uint, challengeHash string, now time.Time) (bool, error) {
	if m.ConsumeChallengeFunc != nil {
		return m.ConsumeChallengeFunc(ctx, accountID, challengeHash, now)
	}
	return true, nil
}

// ClearChallenge clears any stored challenge
func (m *MockAccountRepository) ClearChallenge(ctx context.Context, accountID uint) error {
	if m.ClearChallengeFunc != nil {
		return m.ClearChallengeFunc(ctx, accountID)
	}
	return nil
}

// UpdatePhone sets the contact phone
func (m *MockAccountRepository) UpdatePhone(ctx context.Context, accountID uint, phone string) error {
	if m.UpdatePhoneFunc != nil {
		return m.UpdatePhoneFunc(ctx, accountID, phone)
	}
	return nil
}

// List returns all accounts
func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Account{}, nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
