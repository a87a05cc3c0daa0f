package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockBookingRepository implements domain.BookingRepository interface for testing
type MockBookingRepository struct {
	CreateFunc        func(ctx context.Context, booking *domain.Booking) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Booking, error)
	ListByAccountFunc func(ctx context.Context, accountID uint) ([]*domain.Booking, error)
	ListFunc          func(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatusFunc  func(ctx context.Context, id uint, status domain.BookingStatus, cost decimal.NullDecimal) error
}

// NewMockBookingRepository creates a new MockBookingRepository with default behaviors
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{}
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	booking.ID = 1
	return nil
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uint) (*domain.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrBookingNotFound
}

func (m *MockBookingRepository) ListByAccount(ctx context.Context, accountID uint) ([]*domain.Booking, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uint, status domain.BookingStatus, cost decimal.NullDecimal) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, cost)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.BookingRepository = (*MockBookingRepository)(nil)
