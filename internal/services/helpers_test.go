package services

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/infrastructure/repositories"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/mocks"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeClock is a settable time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// setupTestDB creates a migrated in-memory SQLite database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

// createTestContext creates a context for testing with timeout
func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// createAccountWithChallenge returns an account holding hashed_<code>
func createAccountWithChallenge(t *testing.T, code string, expiresAt time.Time) *domain.Account {
	t.Helper()

	hash := "hashed_" + code
	return &domain.Account{
		ID:                 7,
		Email:              "rider@example.com",
		Role:               domain.RoleUser,
		ChallengeHash:      &hash,
		ChallengeExpiresAt: &expiresAt,
	}
}

var codeInEmail = regexp.MustCompile(`>(\d{6,9})<`)

// lastCodeSentTo extracts the code from the most recent email to addr
func lastCodeSentTo(t *testing.T, notifier *mocks.MockNotificationService, addr string) string {
	t.Helper()

	for i := len(notifier.Emails) - 1; i >= 0; i-- {
		e := notifier.Emails[i]
		if e.To != addr {
			continue
		}
		m := codeInEmail.FindStringSubmatch(e.Body)
		if m == nil {
			t.Fatalf("no code in email body %q", e.Body)
		}
		return m[1]
	}
	t.Fatalf("no email sent to %s", addr)
	return ""
}
