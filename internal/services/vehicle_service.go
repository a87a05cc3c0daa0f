package services

import (
	"context"
	"strings"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// VehicleServiceImpl implements domain.VehicleService
type VehicleServiceImpl struct {
	vehicleRepo domain.VehicleRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo domain.VehicleRepository) domain.VehicleService {
	return &VehicleServiceImpl{vehicleRepo: vehicleRepo}
}

// Register implements domain.VehicleService
func (s *VehicleServiceImpl) Register(ctx context.Context, accountID uint, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	vehicle.Type = strings.TrimSpace(vehicle.Type)
	vehicle.Make = strings.TrimSpace(vehicle.Make)
	vehicle.Model = strings.TrimSpace(vehicle.Model)
	vehicle.RegistrationNumber = strings.ToUpper(strings.TrimSpace(vehicle.RegistrationNumber))

	missing := map[string]bool{
		"type":               vehicle.Type == "",
		"make":               vehicle.Make == "",
		"model":              vehicle.Model == "",
		"year":               vehicle.Year <= 0,
		"registrationNumber": vehicle.RegistrationNumber == "",
	}
	for _, m := range missing {
		if m {
			return nil, &domain.ValidationError{Fields: missing}
		}
	}
	if !domain.ValidVehicleType(vehicle.Type) {
		return nil, domain.ErrInvalidVehicleType
	}

	vehicle.ID = 0
	vehicle.AccountID = accountID
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// List implements domain.VehicleService
func (s *VehicleServiceImpl) List(ctx context.Context, accountID uint) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.ListByAccount(ctx, accountID)
}

// ListAll implements domain.VehicleService
func (s *VehicleServiceImpl) ListAll(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}
