package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	commonerrors "github.com/profiled/accounts/internal/common/errors"
)

type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogDir      string `env:"LOG_DIR"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	TokenSecret string `env:"TOKEN_SECRET,required"`

	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	PasswordMinLength int           `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`

	// SessionTokenTTL of zero issues non-expiring tokens; revocation then
	// happens only through logout.
	SessionTokenTTL        time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"0"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h"`

	RevokeSessionsOnPasswordChange bool `env:"REVOKE_SESSIONS_ON_PASSWORD_CHANGE" envDefault:"false"`

	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateTokenSecret(cfg.TokenSecret); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateTokenSecret(secret string) error {
	if len(secret) < 32 {
		return fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidTokenSecret, len(secret))
	}
	return nil
}
