package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vishwaa-12/Vehicleservicebooking/domain"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/config"
	httpx "github.com/vishwaa-12/Vehicleservicebooking/internal/http"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/http/handlers"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/http/middleware"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/infrastructure/auth"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/infrastructure/database"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/infrastructure/logging"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/infrastructure/notifications"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/infrastructure/repositories"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Log    zerolog.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	AccountRepo domain.AccountRepository
	VehicleRepo domain.VehicleRepository
	BookingRepo domain.BookingRepository
	Throttle    domain.OTPThrottle

	// Services
	Audit           domain.AuditLogger
	Hasher          domain.ChallengeHasher
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	VehicleSvc      domain.VehicleService
	BookingSvc      domain.BookingService
	PolicySvc       domain.PolicyService

	Router *gin.Engine

	now func() time.Time
}

// Option adjusts a Container before its services are built
type Option func(*Container)

// WithNotifier replaces the SMTP and Twilio senders
func WithNotifier(n domain.NotificationService) Option {
	return func(c *Container) { c.NotificationSvc = n }
}

// WithClock sets the clock used for challenge expiry and token lifetimes
func WithClock(now func() time.Time) Option {
	return func(c *Container) { c.now = now }
}

// WithRedis uses client for the OTP throttle instead of dialing cfg.RedisAddr
func WithRedis(client *redis.Client) Option {
	return func(c *Container) { c.RedisClient = client }
}

// NewContainer opens the configured stores and initializes all dependencies
func NewContainer(cfg *config.Config, log zerolog.Logger, opts ...Option) (*Container, error) {
	db, err := database.Open(cfg.DSN, gormLogLevel(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return Assemble(cfg, log, db, opts...)
}

// Assemble migrates db and wires every repository, service and handler on
// top of it.
func Assemble(cfg *config.Config, log zerolog.Logger, db *gorm.DB, opts ...Option) (*Container, error) {
	c := &Container{Config: cfg, Log: log, DB: db, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}
	if err := c.initPolicies(); err != nil {
		return nil, err
	}
	c.initRouter()

	return c, nil
}

func (c *Container) initRedis() error {
	if c.RedisClient == nil && c.Config.RedisAddr != "" {
		c.RedisClient = database.NewRedis(database.RedisOptions{
			Addr:     c.Config.RedisAddr,
			Password: c.Config.RedisPassword,
			DB:       c.Config.RedisDB,
		})
	}
	if c.RedisClient == nil {
		return nil
	}
	return database.PingRedis(c.RedisClient, 5*time.Second)
}

func (c *Container) initRepositories() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.VehicleRepo = repositories.NewVehicleRepository(c.DB)
	c.BookingRepo = repositories.NewBookingRepository(c.DB)

	throttled := c.Config.OTP_ResendWindow > 0 || c.Config.OTP_MaxAttempts > 0
	if c.RedisClient != nil && throttled {
		c.Throttle = repositories.NewOTPThrottle(c.RedisClient, c.Config.OTP_ResendWindow, c.Config.OTP_TTL)
	}
}

func (c *Container) initServices() error {
	c.Audit = logging.NewAuditLogger(c.Log)
	c.Hasher = auth.NewChallengeHasher(c.Config.OTP_HashCost)
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL, auth.WithClock(c.now))

	if c.NotificationSvc == nil {
		mailer, err := notifications.NewSMTPMailer(notifications.SMTPConfig{
			Host:     c.Config.SMTPHost,
			Port:     c.Config.SMTPPort,
			Username: c.Config.SMTPUsername,
			Password: c.Config.SMTPPassword,
			From:     c.Config.SMTPFrom,
			Timeout:  c.Config.SMTPTimeout,
			Retries:  c.Config.SMTPRetries,
		}, c.Log)
		if err != nil {
			return fmt.Errorf("failed to configure mailer: %w", err)
		}
		sms := notifications.NewTwilioSender(c.Config.TwilioSID, c.Config.TwilioToken, c.Config.TwilioFrom, c.Log)
		c.NotificationSvc = notifications.NewNotifier(sms, mailer)
	}

	c.OTPSvc = services.NewOTPService(c.AccountRepo, c.Hasher, c.NotificationSvc, c.Throttle, services.OTPConfig{
		Length:      c.Config.OTP_Length,
		TTL:         c.Config.OTP_TTL,
		MaxAttempts: c.Config.OTP_MaxAttempts,
		AppName:     c.Config.AppName,
		Now:         c.now,
	}, c.Log)
	c.AuthSvc = services.NewAuthService(c.AccountRepo, c.OTPSvc, c.TokenSvc, c.Audit, c.Config.AdminEmails)
	c.VehicleSvc = services.NewVehicleService(c.VehicleRepo)
	c.BookingSvc = services.NewBookingService(c.BookingRepo, c.VehicleRepo, c.AccountRepo, c.NotificationSvc, c.Audit, c.Log)

	return nil
}

func (c *Container) initPolicies() error {
	cas, err := auth.NewCasbinService(c.DB, c.Config.CasbinModelPath)
	if err != nil {
		return fmt.Errorf("failed to initialize casbin: %w", err)
	}
	c.Casbin = cas
	c.PolicySvc = services.NewPolicyService(cas.E)

	seeded, err := c.PolicySvc.SeedDefaults()
	if err != nil {
		return fmt.Errorf("failed to seed policies: %w", err)
	}
	if seeded {
		c.Log.Info().Int("policies", len(services.DefaultPolicies)).Msg("casbin: seeded default policies")
	}
	return nil
}

func (c *Container) initRouter() {
	h := httpx.Handlers{
		Auth: handlers.NewAuthHandlers(c.AuthSvc, c.Audit, handlers.CookieSettings{
			Name:   c.Config.CookieName,
			TTL:    c.Config.CookieTTL,
			Secure: c.Config.SecureCookies(),
		}),
		Vehicles: handlers.NewVehicleHandlers(c.VehicleSvc),
		Bookings: handlers.NewBookingHandlers(c.BookingSvc),
		Admin:    handlers.NewAdminHandlers(c.BookingSvc, c.VehicleSvc, c.AccountRepo),
		Policies: handlers.NewPolicyHandlers(c.PolicySvc),
	}
	jwtMW := middleware.NewAuthMW(c.AuthSvc, c.Config.CookieName)
	casbinMW := middleware.NewCasbinMW(c.PolicySvc, c.Audit)

	c.Router = httpx.BuildRouter(h, jwtMW, casbinMW, c.Log)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	}
	return logger.Silent
}
