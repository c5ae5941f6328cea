package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/you/clinicsvc/domain"
	"github.com/you/clinicsvc/internal/config"
	httpx "github.com/you/clinicsvc/internal/http"
	"github.com/you/clinicsvc/internal/http/handlers"
	"github.com/you/clinicsvc/internal/http/middleware"
	"github.com/you/clinicsvc/internal/infrastructure/auth"
	"github.com/you/clinicsvc/internal/infrastructure/database"
	"github.com/you/clinicsvc/internal/infrastructure/logging"
	"github.com/you/clinicsvc/internal/infrastructure/notifications"
	"github.com/you/clinicsvc/internal/infrastructure/repositories"
	"github.com/you/clinicsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger zerolog.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client // nil when no redis address is configured
	Casbin      *auth.CasbinService

	// Repositories
	DoctorRepo  domain.DoctorRepository
	PatientRepo domain.PatientRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	AuditLogger     domain.AuditLogger
	LoginThrottle   domain.LoginThrottle
	LoginStrategy   domain.LoginStrategy
	AuthSvc         domain.AuthService
	PatientSvc      domain.PatientService
	AnalyticsSvc    domain.AnalyticsService
	PolicySvc       domain.PolicyService
}

// NewContainer connects to the database and redis, migrates, and wires every service
func NewContainer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	db, err := database.Open(cfg.DBDriver, cfg.DSN, cfg.DBLogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		closeDB(db)
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		if rdb, err = database.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			closeDB(db)
			return nil, err
		}
	} else {
		logger.Warn().Msg("redis not configured, login throttling disabled")
	}

	c, err := newContainer(cfg, logger, db, rdb)
	if err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// newContainer wires services over already opened connections. rdb may be nil.
func newContainer(cfg *config.Config, logger zerolog.Logger, db *gorm.DB, rdb *redis.Client) (*Container, error) {
	c := &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		RedisClient: rdb,
	}

	if err := c.initAuthorization(); err != nil {
		return c, err
	}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Container) initAuthorization() error {
	cas, err := auth.NewCasbinService(c.DB, c.Config.CasbinModelPath)
	if err != nil {
		return fmt.Errorf("failed to initialize casbin: %w", err)
	}
	policySvc := services.NewPolicyService(cas.E)
	added, err := policySvc.EnsurePolicies(auth.DefaultPolicies)
	if err != nil {
		return fmt.Errorf("failed to seed casbin policies: %w", err)
	}
	if added > 0 {
		c.Logger.Info().Int("policies", added).Msg("casbin: seeded default policies")
	}

	c.Casbin = cas
	c.PolicySvc = policySvc
	return nil
}

func (c *Container) initRepositories() {
	c.DoctorRepo = repositories.NewDoctorRepository(c.DB)
	c.PatientRepo = repositories.NewPatientRepository(c.DB)
}

func (c *Container) initServices() error {
	cfg := c.Config

	if cfg.BcryptCost > 0 {
		c.PasswordSvc = auth.NewPasswordServiceWithCost(cfg.BcryptCost)
	} else {
		c.PasswordSvc = auth.NewPasswordService()
	}
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	c.AuditLogger = logging.NewAuditLogger(c.Logger)

	if cfg.AlertsEnabled {
		c.NotificationSvc = notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom, c.Logger)
	}

	if c.RedisClient != nil {
		c.LoginThrottle = services.NewLoginThrottle(c.RedisClient, services.ThrottleConfig{
			MaxAttempts: cfg.MaxFailedAttempts,
			Window:      cfg.LockoutWindow,
		})
	}

	strategy, err := services.NewLoginStrategy(cfg.LoginMode, c.DoctorRepo, c.PasswordSvc, c.LoginThrottle, c.Logger)
	if err != nil {
		return err
	}
	if cfg.LoginMode == services.LoginModePermissive {
		c.Logger.Warn().Msg("permissive login enabled, passwords are not checked")
	}
	c.LoginStrategy = strategy

	c.AuthSvc = services.NewAuthService(c.DoctorRepo, c.PasswordSvc, c.TokenSvc, c.LoginStrategy, c.AuditLogger)
	c.PatientSvc = services.NewPatientService(c.PatientRepo, c.TokenSvc, c.NotificationSvc, c.AuditLogger)
	c.AnalyticsSvc = services.NewAnalyticsService(c.PatientRepo, c.TokenSvc)

	return nil
}

// Router builds the HTTP engine over the container's services
func (c *Container) Router() *gin.Engine {
	return httpx.BuildRouter(
		httpx.Handlers{
			Auth:      handlers.NewAuthHandlers(c.AuthSvc),
			Patients:  handlers.NewPatientHandlers(c.PatientSvc),
			Analytics: handlers.NewAnalyticsHandlers(c.AnalyticsSvc),
		},
		middleware.NewAuthMW(c.TokenSvc),
		middleware.NewCasbinMW(c.PolicySvc, auth.DoctorRole),
		c.Logger,
		c.Config.CORSOrigins,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}
	if c.DB != nil {
		return closeDB(c.DB)
	}
	return nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
