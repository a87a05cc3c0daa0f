package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vishwaa-12/Vehicleservicebooking/domain"
)

// sessionClaims is the signed payload of a session token
type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// JWTOption configures a JWTServiceImpl
type JWTOption func(*JWTServiceImpl)

// WithClock overrides the time source used for issuing and validating tokens
func WithClock(now func() time.Time) JWTOption {
	return func(j *JWTServiceImpl) { j.now = now }
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, ttl time.Duration, opts ...JWTOption) domain.TokenService {
	j := &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// GenerateSessionToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateSessionToken(account *domain.Account) (string, *domain.TokenClaims, error) {
	now := j.now()
	claims := sessionClaims{
		Email: account.Email,
		Role:  account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(account.ID), 10),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", nil, err
	}
	return token, toTokenClaims(account.ID, &claims), nil
}

// ValidateSessionToken implements domain.TokenService.
// The signature is checked before any claim, so a forged token never
// reports ErrTokenExpired.
func (j *JWTServiceImpl) ValidateSessionToken(tokenString string) (*domain.TokenClaims, error) {
	if tokenString == "" {
		return nil, domain.ErrTokenMissing
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(j.issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, domain.ErrTokenInvalid
	}

	return toTokenClaims(uint(id), &claims), nil
}

func toTokenClaims(accountID uint, c *sessionClaims) *domain.TokenClaims {
	tc := &domain.TokenClaims{
		AccountID: accountID,
		Email:     c.Email,
		Role:      c.Role,
		TokenID:   c.ID,
	}
	if c.IssuedAt != nil {
		tc.IssuedAt = c.IssuedAt.Unix()
	}
	if c.ExpiresAt != nil {
		tc.ExpiresAt = c.ExpiresAt.Unix()
	}
	return tc
}
