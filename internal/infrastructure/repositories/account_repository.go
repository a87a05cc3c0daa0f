package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID                 uint       `gorm:"primaryKey"`
	Email              string     `gorm:"uniqueIndex;size:255;not null"`
	Phone              string     `gorm:"size:32"`
	Role               string     `gorm:"index;size:32;not null"`
	ChallengeHash      *string    `gorm:"size:255"`
	ChallengeExpiresAt *time.Time `gorm:"index"`
	CreatedAt          time.Time  `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// FindByEmail implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return dbAccount.toDomain(), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return dbAccount.toDomain(), nil
}

// FindOrCreate implements domain.AccountRepository.
// Concurrent first requests for one email converge on a single row.
func (r *AccountRepositoryImpl) FindOrCreate(ctx context.Context, email, role string) (*domain.Account, error) {
	dbAccount := &DBAccount{Email: email, Role: role}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(dbAccount).Error
	if err != nil {
		return nil, err
	}
	return r.FindByEmail(ctx, email)
}

// SetChallenge implements domain.AccountRepository.
// Both challenge columns are written in one statement, replacing any prior challenge.
func (r *AccountRepositoryImpl) SetChallenge(ctx context.Context, accountID uint, challengeHash string, expiresAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", accountID).Updates(map[string]interface{}{
		"challenge_hash":       challengeHash,
		"challenge_expires_at": expiresAt.UTC(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// ConsumeChallenge implements domain.AccountRepository.
// It clears the challenge only if challengeHash is still the stored one and
// unexpired at now; false means another request got there first.
func (r *AccountRepositoryImpl) ConsumeChallenge(ctx context.Context, accountID uint, challengeHash string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).
		Where("id = ? AND challenge_hash = ? AND challenge_expires_at > ?", accountID, challengeHash, now.UTC()).
		Updates(map[string]interface{}{
			"challenge_hash":       nil,
			"challenge_expires_at": nil,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ClearChallenge implements domain.AccountRepository
func (r *AccountRepositoryImpl) ClearChallenge(ctx context.Context, accountID uint) error {
	return r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", accountID).Updates(map[string]interface{}{
		"challenge_hash":       nil,
		"challenge_expires_at": nil,
	}).Error
}

// UpdatePhone implements domain.AccountRepository
func (r *AccountRepositoryImpl) UpdatePhone(ctx context.Context, accountID uint, phone string) error {
	res := r.db.WithContext(ctx).Model(&DBAccount{}).Where("id = ?", accountID).Update("phone", phone)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// List implements domain.AccountRepository
func (r *AccountRepositoryImpl) List(ctx context.Context) ([]*domain.Account, error) {
	var rows []DBAccount
	if err := r.db.WithContext(ctx).Order("email").Find(&rows).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, rows[i].toDomain())
	}
	return accounts, nil
}

func (a *DBAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:                 a.ID,
		Email:              a.Email,
		Phone:              a.Phone,
		Role:               a.Role,
		ChallengeHash:      a.ChallengeHash,
		ChallengeExpiresAt: a.ChallengeExpiresAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
