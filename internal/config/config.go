package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when CLINICSVC_CONFIG is unset
const DefaultPath = "config/config.yml"

type AppConfig struct {
	Port            int    `yaml:"port"`
	GinMode         string `yaml:"gin_mode"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	LogLevel string `yaml:"log_level"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type AuthConfig struct {
	LoginMode         string `yaml:"login_mode"`
	BcryptCost        int    `yaml:"bcrypt_cost"`
	MaxFailedAttempts int    `yaml:"max_failed_attempts"`
	LockoutWindow     string `yaml:"lockout_window"`
}

type AlertsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Auth     AuthConfig     `yaml:"auth"`
	Alerts   AlertsConfig   `yaml:"alerts"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Casbin   CasbinConfig   `yaml:"casbin"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

type Config struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration

	DBDriver   string
	DSN        string
	DBLogLevel string

	// RedisAddr empty disables the login throttle
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	LoginMode         string
	BcryptCost        int
	MaxFailedAttempts int
	LockoutWindow     time.Duration

	AlertsEnabled bool
	TwilioSID     string
	TwilioToken   string
	TwilioFrom    string

	CasbinModelPath string
	CORSOrigins     []string

	LogLevel  string
	LogPretty bool
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads .env (if present), then the YAML file named by CLINICSVC_CONFIG
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFile(env("CLINICSVC_CONFIG", DefaultPath))
}

// LoadFile reads one YAML file and applies environment overrides
func LoadFile(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return fromFile(configFile)
}

func fromFile(f *ConfigFile) (*Config, error) {
	shutdown, err := parseDuration(f.App.ShutdownTimeout, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	tokenTTL, err := parseDuration(env("JWT_TTL", f.JWT.TTL), 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	lockout, err := parseDuration(f.Auth.LockoutWindow, 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid lockout window: %w", err)
	}

	port := f.App.Port
	if p := os.Getenv("PORT"); p != "" {
		if port, err = strconv.Atoi(p); err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
	}
	if port == 0 {
		port = 8080
	}

	maxAttempts := f.Auth.MaxFailedAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	cfg := &Config{
		Port:            strconv.Itoa(port),
		GinMode:         env("GIN_MODE", f.App.GinMode),
		ShutdownTimeout: shutdown,

		DBDriver:   strings.ToLower(env("DATABASE_DRIVER", orDefault(f.Database.Driver, "postgres"))),
		DSN:        env("DATABASE_DSN", f.Database.DSN),
		DBLogLevel: orDefault(f.Database.LogLevel, "warn"),

		RedisAddr:     env("REDIS_ADDR", f.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", f.Redis.Password),
		RedisDB:       f.Redis.DB,

		JWTSecret: env("JWT_SECRET", f.JWT.Secret),
		JWTIssuer: orDefault(f.JWT.Issuer, "clinicsvc"),
		TokenTTL:  tokenTTL,

		LoginMode:         strings.ToLower(env("LOGIN_MODE", orDefault(f.Auth.LoginMode, "verified"))),
		BcryptCost:        f.Auth.BcryptCost,
		MaxFailedAttempts: maxAttempts,
		LockoutWindow:     lockout,

		AlertsEnabled: f.Alerts.Enabled,
		TwilioSID:     env("TWILIO_ACCOUNT_SID", f.Twilio.AccountSID),
		TwilioToken:   env("TWILIO_AUTH_TOKEN", f.Twilio.AuthToken),
		TwilioFrom:    env("TWILIO_FROM_NUMBER", f.Twilio.FromNumber),

		CasbinModelPath: f.Casbin.ModelPath,
		CORSOrigins:     f.CORS.AllowOrigins,

		LogLevel:  env("LOG_LEVEL", orDefault(f.Log.Level, "info")),
		LogPretty: f.Log.Pretty,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required (jwt.secret or JWT_SECRET)")
	}
	if c.DSN == "" {
		return fmt.Errorf("database dsn is required (database.dsn or DATABASE_DSN)")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.DBDriver)
	}
	switch c.LoginMode {
	case "verified", "permissive":
	default:
		return fmt.Errorf("unsupported login mode %q", c.LoginMode)
	}
	return nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
