package mocks

import (
	"strings"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// MockChallengeHasher implements domain.ChallengeHasher interface for testing
type MockChallengeHasher struct {
	HashFunc   func(code string) (string, error)
	VerifyFunc func(hash, code string) bool
}

// NewMockChallengeHasher creates a hasher that prefixes codes with "hashed_"
func NewMockChallengeHasher() *MockChallengeHasher {
	return &MockChallengeHasher{}
}

// Hash hashes a challenge code
func (m *MockChallengeHasher) Hash(code string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(code)
	}
	return "hashed_" + code, nil
}

// Verify compares a hash and a code
func (m *MockChallengeHasher) Verify(hash, code string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, code)
	}
	return strings.TrimPrefix(hash, "hashed_") == code
}

// Compile-time interface compliance verification
var _ domain.ChallengeHasher = (*MockChallengeHasher)(nil)
