package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/rooherbals/dms/internal/refresh"
)

// Config holds runtime configuration for the client.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	APIBaseURL string        `envconfig:"DMS_API_BASE_URL" default:"http://127.0.0.1:3000/api"`
	APIToken   string        `envconfig:"DMS_API_TOKEN"`
	APITimeout time.Duration `envconfig:"DMS_API_TIMEOUT" default:"30s"`

	SearchDebounce time.Duration `envconfig:"DMS_SEARCH_DEBOUNCE" default:"500ms"`

	RequestRate  float64 `envconfig:"DMS_REQUEST_RATE" default:"10"`
	RequestBurst int     `envconfig:"DMS_REQUEST_BURST" default:"5"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.APIBaseURL == "" {
		return nil, errors.New("api base url must be provided")
	}
	if cfg.RequestRate <= 0 {
		return nil, errors.New("request rate must be positive")
	}
	// 500ms is the floor, not a default; shorter configured values
	// would undercut the quiescence guarantee.
	if cfg.SearchDebounce < refresh.DefaultQuiescence {
		cfg.SearchDebounce = refresh.DefaultQuiescence
	}
	return &cfg, nil
}

// IsProduction returns true when the client runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
