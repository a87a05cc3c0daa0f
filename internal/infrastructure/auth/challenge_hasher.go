package auth

import (
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"golang.org/x/crypto/bcrypt"
)

// ChallengeHasherImpl implements domain.ChallengeHasher with bcrypt
type ChallengeHasherImpl struct {
	cost int
}

// NewChallengeHasher creates a bcrypt hasher. A cost outside bcrypt's range
// falls back to bcrypt.DefaultCost.
func NewChallengeHasher(cost int) domain.ChallengeHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &ChallengeHasherImpl{cost: cost}
}

// Hash implements domain.ChallengeHasher
func (h *ChallengeHasherImpl) Hash(code string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify implements domain.ChallengeHasher
func (h *ChallengeHasherImpl) Verify(hash, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
