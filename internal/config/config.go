package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	Database    DatabaseConfig
	JWT         JWTConfig
	App         AppConfig
	Attendance  AttendanceConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
	Log         LogConfig
	Maintenance MaintenanceConfig
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	Timezone    string
	CORSOrigins []string
}

// AttendanceConfig holds the check-in policy
type AttendanceConfig struct {
	LateCutoff             string // HH:MM, check-ins strictly after this minute are Late
	AllowCheckoutOverwrite bool
}

// RedisConfig is optional. When Addr is empty revoked tokens are kept in memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	AuthPerMinute int
}

// MaintenanceConfig controls background cleanup. A zero interval disables the job.
type MaintenanceConfig struct {
	TokenPurgeInterval  time.Duration
	TokenPurgeRetention time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "attendance_tracker"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		AutoMigrate: autoMigrate,
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		Timezone:    getEnv("APP_TIMEZONE", "Local"),
		CORSOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	jwtRefreshExpiration := getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h")
	jwtAccessExpiration := getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h")

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: jwtRefreshExpiration,
		AccessExpiration:  jwtAccessExpiration,
	}

	// Attendance policy
	allowOverwrite, err := strconv.ParseBool(getEnv("ATTENDANCE_ALLOW_CHECKOUT_OVERWRITE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_ALLOW_CHECKOUT_OVERWRITE: %w", err)
	}

	config.Attendance = AttendanceConfig{
		LateCutoff:             getEnv("ATTENDANCE_LATE_CUTOFF", "09:30"),
		AllowCheckoutOverwrite: allowOverwrite,
	}

	// Rate limiting
	authPerMinute, err := strconv.Atoi(getEnv("RATE_LIMIT_AUTH_PER_MINUTE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_AUTH_PER_MINUTE: %w", err)
	}
	config.RateLimit = RateLimitConfig{AuthPerMinute: authPerMinute}

	// Logging
	logMaxSize, err := strconv.Atoi(getEnv("LOG_MAX_SIZE_MB", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_SIZE_MB: %w", err)
	}
	logMaxBackups, err := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_BACKUPS: %w", err)
	}
	logMaxAge, err := strconv.Atoi(getEnv("LOG_MAX_AGE_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_AGE_DAYS: %w", err)
	}
	logCompress, err := strconv.ParseBool(getEnv("LOG_COMPRESS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_COMPRESS: %w", err)
	}

	config.Log = LogConfig{
		Level:      getEnv("LOG_LEVEL", "info"),
		File:       getEnv("LOG_FILE", ""),
		MaxSizeMB:  logMaxSize,
		MaxBackups: logMaxBackups,
		MaxAgeDays: logMaxAge,
		Compress:   logCompress,
	}

	// Maintenance
	purgeInterval, err := time.ParseDuration(getEnv("TOKEN_PURGE_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_PURGE_INTERVAL: %w", err)
	}
	purgeRetention, err := time.ParseDuration(getEnv("TOKEN_PURGE_RETENTION", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_PURGE_RETENTION: %w", err)
	}

	config.Maintenance = MaintenanceConfig{
		TokenPurgeInterval:  purgeInterval,
		TokenPurgeRetention: purgeRetention,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}
	if _, _, ok := validator.IsValidClock(c.Attendance.LateCutoff); !ok {
		return fmt.Errorf("ATTENDANCE_LATE_CUTOFF must be in HH:MM format")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.Maintenance.TokenPurgeRetention < 0 {
		return fmt.Errorf("TOKEN_PURGE_RETENTION must not be negative")
	}
	if c.RateLimit.AuthPerMinute < 1 {
		return fmt.Errorf("RATE_LIMIT_AUTH_PER_MINUTE must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location resolves APP_TIMEZONE. "Local" keeps the server process timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// LateCutoff returns the configured cutoff as hour and minute.
func (c *Config) LateCutoff() (hour, minute int) {
	hour, minute, _ = validator.IsValidClock(c.Attendance.LateCutoff)
	return hour, minute
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
