package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database drivers understood by the persistence layer.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	envProduction        = "production"
	defaultSessionSecret = "dev-secret"
)

// Session store backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Seed     SeedConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// DatabaseConfig selects the persistence provider.
type DatabaseConfig struct {
	Driver string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	MigrationsDir  string
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// SQLiteConfig holds the embedded database location.
type SQLiteConfig struct {
	Path string
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	SessionSecret       string
	SessionTTLHours     int
	SessionStore        string
	SessionSweepMinutes int
	CookieName          string
	CookieSecure        bool
	ScryptN             int
	ScryptR             int
	ScryptP             int
	EmployerAutoApprove bool
}

// SeedConfig toggles demo data.
type SeedConfig struct {
	DemoData bool
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "placement-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			MigrationsDir:  getEnv("POSTGRES_MIGRATIONS_DIR", "migrations"),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "placement.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			SessionSecret:       getEnv("AUTH_SESSION_SECRET", defaultSessionSecret),
			SessionTTLHours:     getEnvAsInt("AUTH_SESSION_TTL_HOURS", 24),
			SessionStore:        strings.ToLower(getEnv("AUTH_SESSION_STORE", SessionStoreMemory)),
			SessionSweepMinutes: getEnvAsInt("AUTH_SESSION_SWEEP_MINUTES", 10),
			CookieName:          getEnv("AUTH_COOKIE_NAME", "placement_session"),
			CookieSecure:        getEnvAsBool("AUTH_COOKIE_SECURE", false),
			ScryptN:             getEnvAsInt("AUTH_SCRYPT_N", 16384),
			ScryptR:             getEnvAsInt("AUTH_SCRYPT_R", 8),
			ScryptP:             getEnvAsInt("AUTH_SCRYPT_P", 1),
			EmployerAutoApprove: getEnvAsBool("AUTH_EMPLOYER_AUTO_APPROVE", true),
		},
		Seed: SeedConfig{
			DemoData: getEnvAsBool("SEED_DEMO_DATA", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required when DB_DRIVER=%s", DriverPostgres)
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER=%s", DriverSQLite)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.App.Env == envProduction && (c.Auth.SessionSecret == "" || c.Auth.SessionSecret == defaultSessionSecret) {
		return fmt.Errorf("AUTH_SESSION_SECRET must be set when APP_ENV=%s", envProduction)
	}

	switch c.Auth.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unsupported AUTH_SESSION_STORE %q", c.Auth.SessionStore)
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// SessionTTL returns the fixed lifetime of a session.
func (a AuthConfig) SessionTTL() time.Duration {
	if a.SessionTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(a.SessionTTLHours) * time.Hour
}

// SweepInterval returns how often expired in-memory sessions are purged.
func (a AuthConfig) SweepInterval() time.Duration {
	if a.SessionSweepMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(a.SessionSweepMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
