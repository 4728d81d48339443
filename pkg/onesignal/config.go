package onesignal

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds OneSignal credentials for env-driven construction.
// APIKey is the REST API key shown in the OneSignal dashboard; AppID is the
// application's UUID. Sandbox routes iOS registrations through Apple's
// sandbox push environment and should stay off in production.
type Config struct {
	APIKey  string `env:"ONESIGNAL_API_KEY,required"`
	AppID   string `env:"ONESIGNAL_APP_ID,required"`
	Sandbox bool   `env:"ONESIGNAL_SANDBOX" envDefault:"false"`
}

// LoadConfig populates a Config from the environment. Files given are loaded
// first (later files win); a missing default .env is not an error, so local
// development and production share one code path.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Overload(envFiles...); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	} else {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// NewFromConfig creates a validated client. Both credentials are required -
// this enforces explicit configuration rather than silent failures at call
// time against the remote API.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", ErrInvalidConfig)
	}
	if cfg.AppID == "" {
		return nil, fmt.Errorf("%w: AppID is required", ErrInvalidConfig)
	}
	if cfg.Sandbox {
		opts = append(opts, WithSandbox())
	}
	return New(cfg.APIKey, cfg.AppID, opts...), nil
}

// MustNewFromConfig creates a client that panics on invalid config.
// Follows the fail-fast pattern of panicking during initialization rather
// than allowing a broken integration to start.
func MustNewFromConfig(cfg Config, opts ...Option) *Client {
	client, err := NewFromConfig(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}
