package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment driven configuration for the thumbnail service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"thumbnail-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"THUMBNAIL_API_PORT" envDefault:"8288"`
	LogLevel        string        `env:"THUMBNAIL_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"THUMBNAIL_LOG_FORMAT" envDefault:"console"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Image Composition
	ImageHostBaseURL string        `env:"IMAGE_HOST_BASE_URL" envDefault:"https://image.pollinations.ai"`
	ImageDelay       time.Duration `env:"COMPOSER_IMAGE_DELAY" envDefault:"75ms"`
	DefaultImages    int           `env:"COMPOSER_DEFAULT_IMAGES" envDefault:"5"`
	MaxImages        int           `env:"COMPOSER_MAX_IMAGES" envDefault:"20"`

	// Usage Tracking
	// Generations are unlimited; the allowance is only reported back to clients.
	DailyAllowance int `env:"DAILY_GENERATION_ALLOWANCE" envDefault:"999"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.ImageHostBaseURL = strings.TrimRight(strings.TrimSpace(cfg.ImageHostBaseURL), "/")
	if cfg.ImageHostBaseURL == "" {
		return nil, fmt.Errorf("IMAGE_HOST_BASE_URL must not be empty")
	}
	if cfg.DefaultImages < 1 || cfg.DefaultImages > cfg.MaxImages {
		return nil, fmt.Errorf("COMPOSER_DEFAULT_IMAGES must be between 1 and %d", cfg.MaxImages)
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
