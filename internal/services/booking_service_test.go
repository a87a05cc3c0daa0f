package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/mocks"
)

type bookingMocks struct {
	bookings *mocks.MockBookingRepository
	vehicles *mocks.MockVehicleRepository
	accounts *mocks.MockAccountRepository
	notifier *mocks.MockNotificationService
	audit    *mocks.MockAuditLogger
}

func createBookingServiceForTest(t *testing.T) (domain.BookingService, *bookingMocks) {
	t.Helper()

	m := &bookingMocks{
		bookings: mocks.NewMockBookingRepository(),
		vehicles: mocks.NewMockVehicleRepository(),
		accounts: mocks.NewMockAccountRepository(),
		notifier: mocks.NewMockNotificationService(),
		audit:    mocks.NewMockAuditLogger(),
	}
	m.accounts.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		return &domain.Account{ID: id, Email: "rider@example.com", Phone: "+919876543210"}, nil
	}
	svc := NewBookingService(m.bookings, m.vehicles, m.accounts, m.notifier, m.audit, zerolog.Nop())
	return svc, m
}

func validBooking() *domain.Booking {
	return &domain.Booking{
		VehicleType:   domain.VehicleTypeTwoWheeler,
		VehicleNumber: "ka05mn0042",
		VehicleName:   "Classic 350",
		ServiceTypes:  []string{"oil change", " ", "chain lube"},
		ScheduledDate: time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestBookingServiceImpl_Book(t *testing.T) {
	vehicleID := uint(4)

	tests := []struct {
		name          string
		booking       func() *domain.Booking
		setupMocks    func(*bookingMocks)
		expectedError error
		expectEmail   bool
	}{
		{
			name:        "successful booking",
			booking:     validBooking,
			expectEmail: true,
		},
		{
			name: "blank service types count as missing",
			booking: func() *domain.Booking {
				b := validBooking()
				b.ServiceTypes = []string{"", "  "}
				return b
			},
			expectedError: domain.ErrMissingFields,
		},
		{
			name: "invalid vehicle type",
			booking: func() *domain.Booking {
				b := validBooking()
				b.VehicleType = "hovercraft"
				return b
			},
			expectedError: domain.ErrInvalidVehicleType,
		},
		{
			name: "vehicle owned by someone else",
			booking: func() *domain.Booking {
				b := validBooking()
				b.VehicleID = &vehicleID
				return b
			},
			setupMocks: func(m *bookingMocks) {
				m.vehicles.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Vehicle, error) {
					return &domain.Vehicle{ID: id, AccountID: 99}, nil
				}
			},
			expectedError: domain.ErrVehicleNotFound,
		},
		{
			name: "own vehicle",
			booking: func() *domain.Booking {
				b := validBooking()
				b.VehicleID = &vehicleID
				return b
			},
			setupMocks: func(m *bookingMocks) {
				m.vehicles.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Vehicle, error) {
					return &domain.Vehicle{ID: id, AccountID: 2}, nil
				}
			},
			expectEmail: true,
		},
		{
			name:    "email failure does not fail the booking",
			booking: validBooking,
			setupMocks: func(m *bookingMocks) {
				m.notifier.SendEmailFunc = func(ctx context.Context, to, subject, body string) error {
					return errors.New("smtp down")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createBookingServiceForTest(t)
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			got, err := svc.Book(createTestContext(t), 2, tt.booking())
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, m.audit.Types())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(2), got.AccountID)
			assert.Equal(t, domain.BookingPending, got.Status)
			assert.Equal(t, "KA05MN0042", got.VehicleNumber)
			assert.Equal(t, []string{"oil change", "chain lube"}, got.ServiceTypes)
			assert.False(t, got.Cost.Valid)
			assert.Equal(t, []domain.AuditEventType{domain.BookingCreatedEvent}, m.audit.Types())

			if tt.expectEmail {
				email, ok := m.notifier.LastEmail()
				require.True(t, ok)
				assert.Equal(t, "rider@example.com", email.To)
				assert.Contains(t, email.Body, "Classic 350")
			}
		})
	}
}

func TestBookingServiceImpl_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        domain.BookingStatus
		cost          decimal.NullDecimal
		current       domain.BookingStatus
		setupMocks    func(*bookingMocks)
		expectedError error
		expectNotify  bool
		expectSMS     bool
	}{
		{
			name:         "confirm with cost",
			status:       domain.BookingConfirmed,
			cost:         decimal.NewNullDecimal(decimal.RequireFromString("1250.456")),
			current:      domain.BookingPending,
			expectNotify: true,
			expectSMS:    true,
		},
		{
			name:          "unknown status",
			status:        "shipped",
			expectedError: domain.ErrInvalidBookingStatus,
		},
		{
			name:          "negative cost",
			status:        domain.BookingCompleted,
			cost:          decimal.NewNullDecimal(decimal.NewFromInt(-5)),
			expectedError: domain.ErrInvalidCost,
		},
		{
			name:    "unknown booking",
			status:  domain.BookingCancelled,
			current: domain.BookingPending,
			setupMocks: func(m *bookingMocks) {
				m.bookings.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Booking, error) {
					return nil, domain.ErrBookingNotFound
				}
			},
			expectedError: domain.ErrBookingNotFound,
		},
		{
			name:    "unchanged status sends nothing",
			status:  domain.BookingPending,
			current: domain.BookingPending,
		},
		{
			name:    "no phone means email only",
			status:  domain.BookingCompleted,
			current: domain.BookingConfirmed,
			setupMocks: func(m *bookingMocks) {
				m.accounts.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
					return &domain.Account{ID: id, Email: "rider@example.com"}, nil
				}
			},
			expectNotify: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createBookingServiceForTest(t)
			row := &domain.Booking{ID: 8, AccountID: 2, VehicleNumber: "KA05MN0042", Status: tt.current}
			m.bookings.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Booking, error) {
				copied := *row
				return &copied, nil
			}
			m.bookings.UpdateStatusFunc = func(ctx context.Context, id uint, status domain.BookingStatus, cost decimal.NullDecimal) error {
				row.Status = status
				if cost.Valid {
					row.Cost = cost
				}
				return nil
			}
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			got, err := svc.UpdateStatus(createTestContext(t), 8, tt.status, tt.cost)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, m.notifier.Emails)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, got.Status)
			if tt.cost.Valid {
				assert.Equal(t, "1250.46", got.Cost.Decimal.StringFixed(2))
			}
			assert.Equal(t, []domain.AuditEventType{domain.BookingStatusChangedEvent}, m.audit.Types())
			assert.Equal(t, tt.expectNotify, len(m.notifier.Emails) == 1)
			assert.Equal(t, tt.expectSMS, len(m.notifier.SMS) == 1)
		})
	}
}
