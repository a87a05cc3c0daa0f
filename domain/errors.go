package domain

import (
	"errors"
	"sort"
	"strings"
)

// Account errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidEmail    = errors.New("please provide a valid email address")
	ErrInvalidPhone    = errors.New("phone must be in E.164 format")
)

// OTP errors
var (
	// ErrOTPInvalid covers a wrong, expired, consumed or absent challenge
	ErrOTPInvalid     = errors.New("invalid otp or otp expired")
	ErrOTPDelivery    = errors.New("failed to send otp")
	ErrOTPMaxAttempts = errors.New("maximum otp attempts exceeded")
	ErrOTPResendLimit = errors.New("otp resend limit exceeded")
)

// Token errors
var (
	ErrTokenMissing = errors.New("authentication token required")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// Vehicle and booking errors
var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrVehicleExists        = errors.New("vehicle with this registration number already exists")
	ErrInvalidVehicleType   = errors.New("invalid vehicle type")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrInvalidCost          = errors.New("cost must not be negative")
	ErrMissingFields        = errors.New("missing required fields")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)

// ValidationError lists the required fields a request left empty
type ValidationError struct {
	Fields map[string]bool
}

func (e *ValidationError) Error() string {
	var names []string
	for name, missing := range e.Fields {
		if missing {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return ErrMissingFields.Error() + ": " + strings.Join(names, ", ")
}

// Is lets errors.Is match ErrMissingFields
func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingFields
}
