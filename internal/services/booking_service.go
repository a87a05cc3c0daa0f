package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// BookingServiceImpl implements domain.BookingService
type BookingServiceImpl struct {
	bookingRepo     domain.BookingRepository
	vehicleRepo     domain.VehicleRepository
	accountRepo     domain.AccountRepository
	notificationSvc domain.NotificationService
	audit           domain.AuditLogger
	log             zerolog.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo domain.BookingRepository,
	vehicleRepo domain.VehicleRepository,
	accountRepo domain.AccountRepository,
	notificationSvc domain.NotificationService,
	audit domain.AuditLogger,
	log zerolog.Logger,
) domain.BookingService {
	return &BookingServiceImpl{
		bookingRepo:     bookingRepo,
		vehicleRepo:     vehicleRepo,
		accountRepo:     accountRepo,
		notificationSvc: notificationSvc,
		audit:           audit,
		log:             log.With().Str("component", "bookings").Logger(),
	}
}

// Book implements domain.BookingService
func (s *BookingServiceImpl) Book(ctx context.Context, accountID uint, booking *domain.Booking) (*domain.Booking, error) {
	booking.VehicleType = strings.TrimSpace(booking.VehicleType)
	booking.VehicleNumber = strings.ToUpper(strings.TrimSpace(booking.VehicleNumber))
	booking.VehicleName = strings.TrimSpace(booking.VehicleName)
	booking.Notes = strings.TrimSpace(booking.Notes)

	kept := booking.ServiceTypes[:0]
	for _, st := range booking.ServiceTypes {
		if st = strings.TrimSpace(st); st != "" {
			kept = append(kept, st)
		}
	}
	booking.ServiceTypes = kept

	if missing := booking.MissingFields(); missing != nil {
		return nil, &domain.ValidationError{Fields: missing}
	}
	if !domain.ValidVehicleType(booking.VehicleType) {
		return nil, domain.ErrInvalidVehicleType
	}

	if booking.VehicleID != nil {
		vehicle, err := s.vehicleRepo.FindByID(ctx, *booking.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle.AccountID != accountID {
			return nil, domain.ErrVehicleNotFound
		}
	}

	booking.ID = 0
	booking.AccountID = accountID
	booking.Status = domain.BookingPending
	booking.Cost = decimal.NullDecimal{}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logEvent(ctx, domain.NewAuditEvent(domain.BookingCreatedEvent, accountID).
		WithMetadata("booking_id", booking.ID).
		WithMetadata("vehicle_number", booking.VehicleNumber))

	if account, err := s.accountRepo.FindByID(ctx, accountID); err == nil {
		subject := "Service booking received"
		body := fmt.Sprintf(`<p>We received your booking #%d for %s (%s).</p>
<p>Services: %s</p>
<p>Scheduled for %s. We will let you know once it is confirmed.</p>`,
			booking.ID, booking.VehicleName, booking.VehicleNumber,
			strings.Join(booking.ServiceTypes, ", "),
			booking.ScheduledDate.Format("Mon, 02 Jan 2006 15:04"))
		s.notifyEmail(ctx, account.Email, subject, body)
	}

	return booking, nil
}

// History implements domain.BookingService
func (s *BookingServiceImpl) History(ctx context.Context, accountID uint) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByAccount(ctx, accountID)
}

// ListAll implements domain.BookingService
func (s *BookingServiceImpl) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// UpdateStatus implements domain.BookingService. The owner is told about
// the change by email, and by SMS when a phone is on file.
func (s *BookingServiceImpl) UpdateStatus(ctx context.Context, id uint, status domain.BookingStatus, cost decimal.NullDecimal) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidBookingStatus
	}
	if cost.Valid && cost.Decimal.IsNegative() {
		return nil, domain.ErrInvalidCost
	}
	if cost.Valid {
		cost.Decimal = cost.Decimal.Round(2)
	}

	previous, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.bookingRepo.UpdateStatus(ctx, id, status, cost); err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, domain.NewAuditEvent(domain.BookingStatusChangedEvent, booking.AccountID).
		WithMetadata("booking_id", booking.ID).
		WithMetadata("from", string(previous.Status)).
		WithMetadata("to", string(booking.Status)))

	if previous.Status == booking.Status && !cost.Valid {
		return booking, nil
	}

	account, err := s.accountRepo.FindByID(ctx, booking.AccountID)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			s.log.Warn().Err(err).Uint("booking_id", booking.ID).Msg("could not load booking owner")
		}
		return booking, nil
	}

	message := fmt.Sprintf("Your service booking #%d for %s is now %s.", booking.ID, booking.VehicleNumber, booking.Status)
	if booking.Cost.Valid {
		message += fmt.Sprintf(" Estimated cost: %s.", booking.Cost.Decimal.StringFixed(2))
	}
	s.notifyEmail(ctx, account.Email, "Service booking "+string(booking.Status), "<p>"+message+"</p>")
	if account.Phone != "" {
		if err := s.notificationSvc.SendSMS(ctx, account.Phone, message); err != nil {
			s.log.Warn().Err(err).Uint("booking_id", booking.ID).Msg("booking sms failed")
		}
	}

	return booking, nil
}

func (s *BookingServiceImpl) notifyEmail(ctx context.Context, to, subject, body string) {
	if err := s.notificationSvc.SendEmail(ctx, to, subject, body); err != nil {
		s.log.Warn().Err(err).Str("to", to).Msg("booking email failed")
	}
}

func (s *BookingServiceImpl) logEvent(ctx context.Context, event *domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	event.WithClientContext(domain.ClientContextFrom(ctx))
	_ = s.audit.LogEvent(ctx, event)
}
