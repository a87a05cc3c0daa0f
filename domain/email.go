package domain

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lower-cases an address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email has the shape local@domain.tld
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

var phonePattern = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// ValidPhone reports whether phone is an E.164 number
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
