package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	accountRepo domain.AccountRepository
	otpSvc      domain.OTPService
	tokenSvc    domain.TokenService
	audit       domain.AuditLogger
	adminEmails map[string]struct{}
}

// NewAuthService creates a new auth service. Accounts created for an address
// in adminEmails get the admin role.
func NewAuthService(
	accountRepo domain.AccountRepository,
	otpSvc domain.OTPService,
	tokenSvc domain.TokenService,
	audit domain.AuditLogger,
	adminEmails []string,
) domain.AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[domain.NormalizeEmail(e)] = struct{}{}
	}
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		otpSvc:      otpSvc,
		tokenSvc:    tokenSvc,
		audit:       audit,
		adminEmails: admins,
	}
}

// SendOTP implements domain.AuthService. The outcome for a new address is
// indistinguishable from that for a known one.
func (s *AuthServiceImpl) SendOTP(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if !domain.ValidEmail(email) {
		return domain.ErrInvalidEmail
	}

	role := domain.RoleUser
	if _, ok := s.adminEmails[email]; ok {
		role = domain.RoleAdmin
	}

	account, err := s.accountRepo.FindOrCreate(ctx, email, role)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	req, err := s.otpSvc.Generate(ctx, account)
	if err != nil {
		s.logEvent(ctx, domain.NewAuditEvent(domain.OTPRequestFailedEvent, account.ID).WithEmail(email).WithError(err))
		return err
	}

	s.logEvent(ctx, domain.NewAuditEvent(domain.OTPRequestEvent, account.ID).
		WithEmail(email).
		WithMetadata("expires_at", req.ExpiresAt.UTC().Format(time.RFC3339)))
	return nil
}

// VerifyOTP implements domain.AuthService. Unknown addresses, missing,
// wrong, expired and already used codes all fail with domain.ErrOTPInvalid.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	email = domain.NormalizeEmail(email)
	if !domain.ValidEmail(email) || strings.TrimSpace(code) == "" {
		return nil, domain.ErrOTPInvalid
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.logEvent(ctx, domain.NewAuditEvent(domain.OTPFailureEvent, 0).WithEmail(email).WithError(domain.ErrOTPInvalid))
			return nil, domain.ErrOTPInvalid
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := s.otpSvc.Verify(ctx, account, code); err != nil {
		s.logEvent(ctx, domain.NewAuditEvent(domain.OTPFailureEvent, account.ID).WithEmail(email).WithError(err))
		return nil, err
	}
	s.logEvent(ctx, domain.NewAuditEvent(domain.OTPVerifyEvent, account.ID).WithEmail(email))

	account.ChallengeHash = nil
	account.ChallengeExpiresAt = nil

	token, claims, err := s.tokenSvc.GenerateSessionToken(account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	s.logEvent(ctx, domain.NewAuditEvent(domain.AccountLoginEvent, account.ID).
		WithEmail(email).
		WithMetadata("jti", claims.TokenID))

	return &domain.AuthResult{
		Account:   account,
		Token:     token,
		ExpiresAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}

// Authenticate implements domain.AuthService
func (s *AuthServiceImpl) Authenticate(token string) (*domain.TokenClaims, error) {
	return s.tokenSvc.ValidateSessionToken(token)
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, accountID uint) (*domain.Account, error) {
	return s.accountRepo.FindByID(ctx, accountID)
}

// UpdatePhone implements domain.AuthService. An empty phone removes the SMS
// contact.
func (s *AuthServiceImpl) UpdatePhone(ctx context.Context, accountID uint, phone string) (*domain.Account, error) {
	phone = strings.TrimSpace(phone)
	if phone != "" && !domain.ValidPhone(phone) {
		return nil, domain.ErrInvalidPhone
	}
	if err := s.accountRepo.UpdatePhone(ctx, accountID, phone); err != nil {
		return nil, err
	}
	return s.accountRepo.FindByID(ctx, accountID)
}

func (s *AuthServiceImpl) logEvent(ctx context.Context, event *domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	event.WithClientContext(domain.ClientContextFrom(ctx))
	_ = s.audit.LogEvent(ctx, event)
}
