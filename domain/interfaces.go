package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AccountRepository defines account data access operations.
// Each method is a single statement so the store's per-row atomicity holds.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id uint) (*Account, error)
	FindOrCreate(ctx context.Context, email, role string) (*Account, error)
	SetChallenge(ctx context.Context, accountID uint, challengeHash string, expiresAt time.Time) error
	ConsumeChallenge(ctx context.Context, accountID uint, challengeHash string, now time.Time) (bool, error)
	ClearChallenge(ctx context.Context, accountID uint) error
	UpdatePhone(ctx context.Context, accountID uint, phone string) error
	List(ctx context.Context) ([]*Account, error)
}

// VehicleRepository defines vehicle data access operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *Vehicle) error
	FindByID(ctx context.Context, id uint) (*Vehicle, error)
	FindByRegistration(ctx context.Context, registrationNumber string) (*Vehicle, error)
	ListByAccount(ctx context.Context, accountID uint) ([]*Vehicle, error)
	List(ctx context.Context) ([]*Vehicle, error)
}

// BookingRepository defines booking data access operations
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id uint) (*Booking, error)
	ListByAccount(ctx context.Context, accountID uint) ([]*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id uint, status BookingStatus, cost decimal.NullDecimal) error
}

// OTPThrottle tracks resend windows and verify attempts per email
type OTPThrottle interface {
	CanResend(ctx context.Context, email string) (bool, int64, error)
	MarkSent(ctx context.Context, email string) error
	RegisterAttempt(ctx context.Context, email string) (int64, error)
	Reset(ctx context.Context, email string) error
}

// AuthService defines the OTP login flow
type AuthService interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (*AuthResult, error)
	Authenticate(token string) (*TokenClaims, error)
	GetProfile(ctx context.Context, accountID uint) (*Account, error)
	UpdatePhone(ctx context.Context, accountID uint, phone string) (*Account, error)
}

// OTPService defines challenge issuance and verification for an account
type OTPService interface {
	Generate(ctx context.Context, account *Account) (*OTPRequest, error)
	Verify(ctx context.Context, account *Account, code string) error
}

// ChallengeHasher hashes challenges at rest
type ChallengeHasher interface {
	Hash(code string) (string, error)
	Verify(hash, code string) bool
}

// TokenService issues and validates session tokens
type TokenService interface {
	GenerateSessionToken(account *Account) (string, *TokenClaims, error)
	ValidateSessionToken(token string) (*TokenClaims, error)
}

// NotificationService defines out-of-band delivery
type NotificationService interface {
	SendSMS(ctx context.Context, to, message string) error
	SendEmail(ctx context.Context, to, subject, body string) error
}

// VehicleService defines vehicle registration
type VehicleService interface {
	Register(ctx context.Context, accountID uint, vehicle *Vehicle) (*Vehicle, error)
	List(ctx context.Context, accountID uint) ([]*Vehicle, error)
	ListAll(ctx context.Context) ([]*Vehicle, error)
}

// BookingService defines service bookings and their lifecycle
type BookingService interface {
	Book(ctx context.Context, accountID uint, booking *Booking) (*Booking, error)
	History(ctx context.Context, accountID uint) ([]*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id uint, status BookingStatus, cost decimal.NullDecimal) (*Booking, error)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
	SeedDefaults() (bool, error)
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
