package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vishwaa-12/Vehicleservicebooking/internal/app"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/config"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/mocks"
)

const adminEmail = "admin@garage.test"

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testServer is the full router over an in-memory store
type testServer struct {
	t        *testing.T
	router   *gin.Engine
	notifier *mocks.MockNotificationService
	clock    *testClock
	redis    *miniredis.Miniredis
	app      *app.Container
}

func testConfig() *config.Config {
	return &config.Config{
		AppName:     "Vehicle Service",
		Environment: config.EnvDevelopment,
		JWTSecret:   "e2e-secret-key",
		JWTIssuer:   "vehiclesvc",
		TokenTTL:    24 * time.Hour,
		CookieName:  "token",
		CookieTTL:   24 * time.Hour,
		OTP_TTL:     5 * time.Minute,
		OTP_Length:  6,
		// bcrypt.MinCost keeps the suite fast
		OTP_HashCost: 4,
		AdminEmails:  []string{adminEmail},
	}
}

// newTestServer builds the app; mutate adjusts the config first. A miniredis
// instance backs the throttle when the config enables it.
func newTestServer(t *testing.T, mutate func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(t)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(4)

	ts := &testServer{
		t:        t,
		notifier: mocks.NewMockNotificationService(),
		clock:    &testClock{now: time.Now().UTC().Truncate(time.Second)},
	}

	opts := []app.Option{app.WithNotifier(ts.notifier), app.WithClock(ts.clock.Now)}
	if cfg.OTP_ResendWindow > 0 || cfg.OTP_MaxAttempts > 0 {
		ts.redis = miniredis.RunT(t)
		opts = append(opts, app.WithRedis(redis.NewClient(&redis.Options{Addr: ts.redis.Addr()})))
	}

	c, err := app.Assemble(cfg, zerolog.Nop(), db, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	ts.app = c
	ts.router = c.Router
	return ts
}

// sqliteDSN points at a fresh file per test. The casbin adapter rewrites the
// policy table on one connection while holding a transaction on another, so
// the pool needs more than one connection; WAL with a busy timeout lets the
// concurrent request tests share the file.
func sqliteDSN(t *testing.T) string {
	return filepath.Join(t.TempDir(), "vehiclesvc.db") + "?_journal_mode=WAL&_busy_timeout=5000"
}

type request struct {
	method string
	path   string
	body   interface{}
	token  string
	cookie *http.Cookie
}

func (ts *testServer) do(r request) *httptest.ResponseRecorder {
	ts.t.Helper()
	var buf bytes.Buffer
	if r.body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(r.body))
	}
	req := httptest.NewRequest(r.method, r.path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if r.cookie != nil {
		req.AddCookie(r.cookie)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

var codeInEmail = regexp.MustCompile(`>(\d{6,9})<`)

func (ts *testServer) sendOTP(email string) *httptest.ResponseRecorder {
	return ts.do(request{method: http.MethodPost, path: "/auth/send-otp", body: map[string]string{"email": email}})
}

func (ts *testServer) verifyOTP(email, code string) *httptest.ResponseRecorder {
	return ts.do(request{method: http.MethodPost, path: "/auth/verify-otp", body: map[string]string{"email": email, "otp": code}})
}

// lastCode returns the code in the latest email to email
func (ts *testServer) lastCode(email string) string {
	ts.t.Helper()
	for i := len(ts.notifier.Emails) - 1; i >= 0; i-- {
		e := ts.notifier.Emails[i]
		if e.To != email {
			continue
		}
		if m := codeInEmail.FindStringSubmatch(e.Body); m != nil {
			return m[1]
		}
	}
	ts.t.Fatalf("no otp email sent to %s", email)
	return ""
}

// login runs the OTP flow and returns the session token
func (ts *testServer) login(email string) string {
	ts.t.Helper()
	require.Equal(ts.t, http.StatusOK, ts.sendOTP(email).Code)
	w := ts.verifyOTP(email, ts.lastCode(email))
	require.Equal(ts.t, http.StatusOK, w.Code, w.Body.String())
	return body(ts.t, w)["token"].(string)
}
