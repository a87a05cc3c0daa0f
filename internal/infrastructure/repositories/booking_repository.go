package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"gorm.io/gorm"
)

// BookingRepositoryImpl implements domain.BookingRepository using GORM
type BookingRepositoryImpl struct {
	db *gorm.DB
}

// DBBooking represents the database model for Booking
type DBBooking struct {
	ID            uint                `gorm:"primaryKey"`
	AccountID     uint                `gorm:"index;not null"`
	VehicleID     *uint               `gorm:"index"`
	VehicleType   string              `gorm:"size:32;not null"`
	VehicleNumber string              `gorm:"size:32;not null"`
	VehicleName   string              `gorm:"size:128;not null"`
	ServiceTypes  []string            `gorm:"type:text;serializer:json"`
	ScheduledDate time.Time           `gorm:"index;not null"`
	Status        string              `gorm:"index;size:16;not null"`
	Notes         string              `gorm:"type:text"`
	Cost          decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DBBooking) TableName() string {
	return "bookings"
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domain.BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

// Create implements domain.BookingRepository
func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *domain.Booking) error {
	row := &DBBooking{
		AccountID:     booking.AccountID,
		VehicleID:     booking.VehicleID,
		VehicleType:   booking.VehicleType,
		VehicleNumber: booking.VehicleNumber,
		VehicleName:   booking.VehicleName,
		ServiceTypes:  booking.ServiceTypes,
		ScheduledDate: booking.ScheduledDate.UTC(),
		Status:        string(booking.Status),
		Notes:         booking.Notes,
		Cost:          booking.Cost,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	booking.ID = row.ID
	booking.CreatedAt = row.CreatedAt
	booking.UpdatedAt = row.UpdatedAt
	return nil
}

// FindByID implements domain.BookingRepository
func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Booking, error) {
	var row DBBooking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// ListByAccount implements domain.BookingRepository
func (r *BookingRepositoryImpl) ListByAccount(ctx context.Context, accountID uint) ([]*domain.Booking, error) {
	return r.list(r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("scheduled_date desc, id desc"))
}

// List implements domain.BookingRepository
func (r *BookingRepositoryImpl) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(r.db.WithContext(ctx).Order("scheduled_date desc, id desc"))
}

// UpdateStatus implements domain.BookingRepository.
// An invalid cost leaves the stored cost untouched.
func (r *BookingRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status domain.BookingStatus, cost decimal.NullDecimal) error {
	updates := map[string]interface{}{"status": string(status)}
	if cost.Valid {
		updates["cost"] = cost
	}
	res := r.db.WithContext(ctx).Model(&DBBooking{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepositoryImpl) list(q *gorm.DB) ([]*domain.Booking, error) {
	var rows []DBBooking
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	bookings := make([]*domain.Booking, 0, len(rows))
	for i := range rows {
		bookings = append(bookings, rows[i].toDomain())
	}
	return bookings, nil
}

func (b *DBBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:            b.ID,
		AccountID:     b.AccountID,
		VehicleID:     b.VehicleID,
		VehicleType:   b.VehicleType,
		VehicleNumber: b.VehicleNumber,
		VehicleName:   b.VehicleName,
		ServiceTypes:  b.ServiceTypes,
		ScheduledDate: b.ScheduledDate,
		Status:        domain.BookingStatus(b.Status),
		Notes:         b.Notes,
		Cost:          b.Cost,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
