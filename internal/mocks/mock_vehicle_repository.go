package mocks

import (
	"context"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockVehicleRepository implements domain.VehicleRepository interface for testing
type MockVehicleRepository struct {
	CreateFunc             func(ctx context.Context, vehicle *domain.Vehicle) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Vehicle, error)
	FindByRegistrationFunc func(ctx context.Context, registrationNumber string) (*domain.Vehicle, error)
	ListByAccountFunc      func(ctx context.Context, accountID uint) ([]*domain.Vehicle, error)
	ListFunc               func(ctx context.Context) ([]*domain.Vehicle, error)
}

// NewMockVehicleRepository creates a new MockVehicleRepository with default behaviors
func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{}
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, vehicle)
	}
	vehicle.ID = 1
	return nil
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uint) (*domain.Vehicle, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrVehicleNotFound
}

func (m *MockVehicleRepository) FindByRegistration(ctx context.Context, registrationNumber string) (*domain.Vehicle, error) {
	if m.FindByRegistrationFunc != nil {
		return m.FindByRegistrationFunc(ctx, registrationNumber)
	}
	return nil, domain.ErrVehicleNotFound
}

func (m *MockVehicleRepository) ListByAccount(ctx context.Context, accountID uint) ([]*domain.Vehicle, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	return []*domain.Vehicle{}, nil
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Vehicle{}, nil
}

// Compile-time interface compliance verification
var _ domain.VehicleRepository = (*MockVehicleRepository)(nil)
