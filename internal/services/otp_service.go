package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// OTPSubject is the subject line of challenge emails
const OTPSubject = "Your OTP for Vehicle Service"

// OTPServiceImpl implements domain.OTPService. The challenge lives on the
// account record as a hash; an optional throttle caps resends and attempts.
type OTPServiceImpl struct {
	accountRepo     domain.AccountRepository
	hasher          domain.ChallengeHasher
	notificationSvc domain.NotificationService
	throttle        domain.OTPThrottle
	config          OTPConfig
	log             zerolog.Logger
}

type OTPConfig struct {
	Length      int
	TTL         time.Duration
	MaxAttempts int
	AppName     string
	Now         func() time.Time
}

// NewOTPService creates a new OTP service. throttle may be nil.
func NewOTPService(
	accountRepo domain.AccountRepository,
	hasher domain.ChallengeHasher,
	notificationSvc domain.NotificationService,
	throttle domain.OTPThrottle,
	config OTPConfig,
	log zerolog.Logger,
) domain.OTPService {
	if config.Length == 0 {
		config.Length = 6
	}
	if config.TTL == 0 {
		config.TTL = 5 * time.Minute
	}
	if config.AppName == "" {
		config.AppName = "Vehicle Service"
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &OTPServiceImpl{
		accountRepo:     accountRepo,
		hasher:          hasher,
		notificationSvc: notificationSvc,
		throttle:        throttle,
		config:          config,
		log:             log,
	}
}

// Generate implements domain.OTPService. A new challenge always replaces the
// previous one. If delivery fails the stored challenge is left in place.
func (s *OTPServiceImpl) Generate(ctx context.Context, account *domain.Account) (*domain.OTPRequest, error) {
	if s.throttle != nil {
		ok, wait, err := s.throttle.CanResend(ctx, account.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check resend window: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: retry in %d seconds", domain.ErrOTPResendLimit, wait)
		}
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	hash, err := s.hasher.Hash(code)
	if err != nil {
		return nil, fmt.Errorf("failed to hash OTP code: %w", err)
	}

	expiresAt := s.config.Now().Add(s.config.TTL)
	if err := s.accountRepo.SetChallenge(ctx, account.ID, hash, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, account.Email); err != nil {
			return nil, fmt.Errorf("failed to reset OTP attempts: %w", err)
		}
	}

	if err := s.notificationSvc.SendEmail(ctx, account.Email, OTPSubject, s.renderEmail(code)); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrOTPDelivery, err)
	}

	if s.throttle != nil {
		if err := s.throttle.MarkSent(ctx, account.Email); err != nil {
			return nil, fmt.Errorf("failed to set resend window: %w", err)
		}
	}

	return &domain.OTPRequest{
		AccountID: account.ID,
		Email:     account.Email,
		Code:      code,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify implements domain.OTPService. account must be freshly loaded; the
// final check-and-clear happens in one conditional write so a code can be
// redeemed at most once.
func (s *OTPServiceImpl) Verify(ctx context.Context, account *domain.Account, code string) error {
	if s.throttle != nil && s.config.MaxAttempts > 0 {
		attempts, err := s.throttle.RegisterAttempt(ctx, account.Email)
		if err != nil {
			return fmt.Errorf("failed to count OTP attempt: %w", err)
		}
		if attempts > int64(s.config.MaxAttempts) {
			if err := s.accountRepo.ClearChallenge(ctx, account.ID); err != nil {
				return fmt.Errorf("failed to clear OTP: %w", err)
			}
			s.resetAttempts(ctx, account.Email)
			return domain.ErrOTPMaxAttempts
		}
	}

	now := s.config.Now()
	if !account.HasOutstandingChallenge(now) {
		return domain.ErrOTPInvalid
	}

	code = strings.TrimSpace(code)
	if len(code) != s.config.Length || !s.hasher.Verify(*account.ChallengeHash, code) {
		return domain.ErrOTPInvalid
	}

	consumed, err := s.accountRepo.ConsumeChallenge(ctx, account.ID, *account.ChallengeHash, now)
	if err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}
	if !consumed {
		return domain.ErrOTPInvalid
	}

	if s.throttle != nil {
		s.resetAttempts(ctx, account.Email)
	}
	return nil
}

// resetAttempts clears the attempt counter; a failure only leaves a stale
// counter behind, which expires with the challenge TTL.
func (s *OTPServiceImpl) resetAttempts(ctx context.Context, email string) {
	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("otp: failed to reset attempt counter")
	}
}

// generateSecureCode returns a uniformly random code with no leading zero
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(s.config.Length-1)), nil)
	span := new(big.Int).Mul(low, big.NewInt(9))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	return n.Add(n, low).String(), nil
}

func (s *OTPServiceImpl) renderEmail(code string) string {
	minutes := int(s.config.TTL.Minutes())
	return fmt.Sprintf(`<h2>%s Login</h2>
<p>Your one-time password is:</p>
<h1 style="letter-spacing:4px">%s</h1>
<p>This code expires in %d minutes. If you did not request it, you can ignore this email.</p>`,
		s.config.AppName, code, minutes)
}
