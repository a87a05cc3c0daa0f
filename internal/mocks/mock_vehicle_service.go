package mocks

import (
	"context"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockVehicleService implements domain.VehicleService interface for testing
type MockVehicleService struct {
	RegisterFunc func(ctx context.Context, accountID uint, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	ListFunc     func(ctx context.Context, accountID uint) ([]*domain.Vehicle, error)
	ListAllFunc  func(ctx context.Context) ([]*domain.Vehicle, error)
}

// NewMockVehicleService creates a new MockVehicleService with default behaviors
func NewMockVehicleService() *MockVehicleService {
	return &MockVehicleService{}
}

func (m *MockVehicleService) Register(ctx context.Context, accountID uint, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, accountID, vehicle)
	}
	vehicle.ID = 1
	vehicle.AccountID = accountID
	return vehicle, nil
}

func (m *MockVehicleService) List(ctx context.Context, accountID uint) ([]*domain.Vehicle, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, accountID)
	}
	return []*domain.Vehicle{}, nil
}

func (m *MockVehicleService) ListAll(ctx context.Context) ([]*domain.Vehicle, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []*domain.Vehicle{}, nil
}

// Compile-time interface compliance verification
var _ domain.VehicleService = (*MockVehicleService)(nil)
