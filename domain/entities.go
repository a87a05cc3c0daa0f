package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is the identity anchor keyed by normalized email.
// ChallengeHash and ChallengeExpiresAt are both set or both nil.
type Account struct {
	ID                 uint
	Email              string
	Phone              string
	Role               string
	ChallengeHash      *string
	ChallengeExpiresAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasOutstandingChallenge reports whether a challenge is stored and still
// strictly in the future at now.
func (a *Account) HasOutstandingChallenge(now time.Time) bool {
	if a == nil || a.ChallengeHash == nil || a.ChallengeExpiresAt == nil {
		return false
	}
	return a.ChallengeExpiresAt.After(now)
}

// PolicySubject is the authorization subject for a role
func PolicySubject(role string) string {
	return "role_" + role
}

// IsAdmin reports whether the account carries the admin role
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// OTPRequest describes an issued challenge
type OTPRequest struct {
	AccountID uint
	Email     string
	Code      string
	ExpiresAt time.Time
}

// AuthResult represents a successful OTP login
type AuthResult struct {
	Account   *Account
	Token     string
	ExpiresAt time.Time
}

// TokenClaims is the identity carried by a session token
type TokenClaims struct {
	AccountID uint   `json:"sub"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenID   string `json:"jti"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Vehicle types accepted for vehicles and bookings
const (
	VehicleTypeTwoWheeler  = "two-wheeler"
	VehicleTypeFourWheeler = "four-wheeler"
	VehicleTypeOthers      = "others"
)

// ValidVehicleType reports whether t is a known vehicle type
func ValidVehicleType(t string) bool {
	switch t {
	case VehicleTypeTwoWheeler, VehicleTypeFourWheeler, VehicleTypeOthers:
		return true
	}
	return false
}

// Vehicle is a vehicle owned by an account
type Vehicle struct {
	ID                 uint      `json:"id"`
	AccountID          uint      `json:"accountId"`
	Type               string    `json:"type"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	Year               int       `json:"year"`
	RegistrationNumber string    `json:"registrationNumber"`
	CreatedAt          time.Time `json:"createdAt"`
}

// BookingStatus is the lifecycle state of a service booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is a maintenance service requested for a vehicle
type Booking struct {
	ID            uint                `json:"id"`
	AccountID     uint                `json:"accountId"`
	VehicleID     *uint               `json:"vehicleId"`
	VehicleType   string              `json:"vehicleType"`
	VehicleNumber string              `json:"vehicleNumber"`
	VehicleName   string              `json:"vehicleName"`
	ServiceTypes  []string            `json:"serviceTypes"`
	ScheduledDate time.Time           `json:"scheduledDate"`
	Status        BookingStatus       `json:"status"`
	Notes         string              `json:"notes,omitempty"`
	Cost          decimal.NullDecimal `json:"cost"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// MissingFields reports which required booking fields are empty
func (b *Booking) MissingFields() map[string]bool {
	missing := map[string]bool{
		"vehicleType":   b.VehicleType == "",
		"vehicleNumber": b.VehicleNumber == "",
		"vehicleName":   b.VehicleName == "",
		"serviceTypes":  len(b.ServiceTypes) == 0,
		"scheduledDate": b.ScheduledDate.IsZero(),
	}
	for _, v := range missing {
		if v {
			return missing
		}
	}
	return nil
}
