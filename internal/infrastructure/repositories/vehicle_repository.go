package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"gorm.io/gorm"
)

// VehicleRepositoryImpl implements domain.VehicleRepository using GORM
type VehicleRepositoryImpl struct {
	db *gorm.DB
}

// DBVehicle represents the database model for Vehicle
type DBVehicle struct {
	ID                 uint   `gorm:"primaryKey"`
	AccountID          uint   `gorm:"index;not null"`
	Type               string `gorm:"size:32;not null"`
	Make               string `gorm:"size:64;not null"`
	Model              string `gorm:"size:64;not null"`
	Year               int    `gorm:"not null"`
	RegistrationNumber string `gorm:"uniqueIndex;size:32;not null"`
	CreatedAt          time.Time
}

func (DBVehicle) TableName() string {
	return "vehicles"
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) domain.VehicleRepository {
	return &VehicleRepositoryImpl{db: db}
}

// Create implements domain.VehicleRepository
func (r *VehicleRepositoryImpl) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	row := &DBVehicle{
		AccountID:          vehicle.AccountID,
		Type:               vehicle.Type,
		Make:               vehicle.Make,
		Model:              vehicle.Model,
		Year:               vehicle.Year,
		RegistrationNumber: vehicle.RegistrationNumber,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrVehicleExists
		}
		return err
	}
	vehicle.ID = row.ID
	vehicle.CreatedAt = row.CreatedAt
	return nil
}

// FindByID implements domain.VehicleRepository
func (r *VehicleRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Vehicle, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByRegistration implements domain.VehicleRepository
func (r *VehicleRepositoryImpl) FindByRegistration(ctx context.Context, registrationNumber string) (*domain.Vehicle, error) {
	return r.findOne(ctx, "registration_number = ?", registrationNumber)
}

// ListByAccount implements domain.VehicleRepository
func (r *VehicleRepositoryImpl) ListByAccount(ctx context.Context, accountID uint) ([]*domain.Vehicle, error) {
	return r.list(r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("id"))
}

// List implements domain.VehicleRepository
func (r *VehicleRepositoryImpl) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return r.list(r.db.WithContext(ctx).Order("registration_number"))
}

func (r *VehicleRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*domain.Vehicle, error) {
	var row DBVehicle
	if err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *VehicleRepositoryImpl) list(q *gorm.DB) ([]*domain.Vehicle, error) {
	var rows []DBVehicle
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	vehicles := make([]*domain.Vehicle, 0, len(rows))
	for i := range rows {
		vehicles = append(vehicles, rows[i].toDomain())
	}
	return vehicles, nil
}

func (v *DBVehicle) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:                 v.ID,
		AccountID:          v.AccountID,
		Type:               v.Type,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		RegistrationNumber: v.RegistrationNumber,
		CreatedAt:          v.CreatedAt,
	}
}
