package constants

import "time"

const (
	UsernameMinLength    = 3
	UsernameMaxLength    = 32
	PasswordMaxLength    = 72
	TokenSecretMinLength = 32

	DescriptionMaxLength = 1000
	PictureMaxLength     = 2048
	LinkMaxLength        = 2048

	DefaultMaxRequestSize = 1 << 20

	DBPoolMaxOpenConns    = 25
	DBPoolMinOpenConns    = 5
	DBPoolConnMaxLifetime = time.Hour
	DBPoolConnMaxIdleTime = 30 * time.Minute
	DBPoolHealthCheck     = time.Minute
	DBPoolConnectTimeout  = 5 * time.Second
	DBPoolMaxAttempts     = 10
	DBPoolRetryDelay      = time.Second
	DBPoolMetricsInterval = 30 * time.Second

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultHTTPPort           = "8080"
	DefaultRequestTimeout     = 5 * time.Second
	DefaultPasswordMinLength  = 8
	DefaultSessionCleanupTick = time.Hour

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28

	TestTokenSecret = "0123456789abcdef0123456789abcdef"
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
