package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockBookingService implements domain.BookingService interface for testing
type MockBookingService struct {
	BookFunc         func(ctx context.Context, accountID uint, booking *domain.Booking) (*domain.Booking, error)
	HistoryFunc      func(ctx context.Context, accountID uint) ([]*domain.Booking, error)
	ListAllFunc      func(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status domain.BookingStatus, cost decimal.NullDecimal) (*domain.Booking, error)
}

// NewMockBookingService creates a new MockBookingService with default behaviors
func NewMockBookingService() *MockBookingService {
	return &MockBookingService{}
}

func (m *MockBookingService) Book(ctx context.Context, accountID uint, booking *domain.Booking) (*domain.Booking, error) {
	if m.BookFunc != nil {
		return m.BookFunc(ctx, accountID, booking)
	}
	booking.ID = 1
	booking.AccountID = accountID
	booking.Status = domain.BookingPending
	return booking, nil
}

func (m *MockBookingService) History(ctx context.Context, accountID uint) ([]*domain.Booking, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, accountID)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingService) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingService) UpdateStatus(ctx context.Context, id uint, status domain.BookingStatus, cost decimal.NullDecimal) (*domain.Booking, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, cost)
	}
	return &domain.Booking{ID: id, Status: status, Cost: cost}, nil
}

// Compile-time interface compliance verification
var _ domain.BookingService = (*MockBookingService)(nil)
