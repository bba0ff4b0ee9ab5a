package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"

	"github.com/angelmondragon/storefront-backend/pkg/env"
)

type Config struct {
	App      AppConfig
	CORS     CORSConfig
	Checkout CheckoutConfig
	Catalog  CatalogConfig
	Metrics  MetricsConfig
	DemoUser DemoUserConfig
	Password PasswordConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if c.Checkout.ProcessingDelay < 0 {
		err = multierr.Append(err, fmt.Errorf("%s must not be negative", EnvCheckoutProcessingDelay))
	}
	if c.Checkout.ProcessingTimeout <= c.Checkout.ProcessingDelay {
		err = multierr.Append(err, fmt.Errorf("%s must exceed %s", EnvCheckoutProcessingTimeout, EnvCheckoutProcessingDelay))
	}
	if c.Catalog.FeaturedLimit <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s must be positive", EnvCatalogFeaturedLimit))
	}
	if _, parseErr := uuid.Parse(c.DemoUser.ID); parseErr != nil {
		err = multierr.Append(err, fmt.Errorf("%s: %w", EnvDemoUserID, parseErr))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		err = multierr.Append(err, fmt.Errorf("%s must start with /", EnvMetricsPath))
	}
	if c.App.IsProd() {
		for _, origin := range c.CORS.AllowedOrigins {
			if strings.TrimSpace(origin) == "*" {
				err = multierr.Append(err, fmt.Errorf("%s must not allow * in %s", EnvCORSAllowedOrigins, AppEnvProd))
			}
		}
	}
	switch strings.ToLower(c.App.LogFormat) {
	case "", LogFormatJSON, LogFormatConsole:
	default:
		err = multierr.Append(err, fmt.Errorf("%s must be %s or %s", EnvLogFormat, LogFormatJSON, LogFormatConsole))
	}
	return err
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"STOREFRONT_LOG_FORMAT"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

// ConsoleLogs reports whether logs should be human-readable. An unset format follows the environment.
func (a AppConfig) ConsoleLogs() bool {
	switch strings.ToLower(a.LogFormat) {
	case LogFormatConsole:
		return true
	case LogFormatJSON:
		return false
	}
	return a.IsDev()
}

// ListenAddr prefers STOREFRONT_APP_PORT, then the platform PORT, then the configured default.
func (a AppConfig) ListenAddr() string {
	return ":" + env.FirstSet(a.Port, EnvPort, "PORT")
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOREFRONT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// CheckoutConfig controls the simulated payment step that follows a valid submission.
type CheckoutConfig struct {
	ProcessingDelay   time.Duration `envconfig:"STOREFRONT_CHECKOUT_PROCESSING_DELAY" default:"2s"`
	ProcessingTimeout time.Duration `envconfig:"STOREFRONT_CHECKOUT_PROCESSING_TIMEOUT" default:"10s"`
	BreakerFailures   uint32        `envconfig:"STOREFRONT_CHECKOUT_BREAKER_FAILURES" default:"5"`
	BreakerCooldown   time.Duration `envconfig:"STOREFRONT_CHECKOUT_BREAKER_COOLDOWN" default:"30s"`
}

type CatalogConfig struct {
	FeaturedLimit int `envconfig:"STOREFRONT_CATALOG_FEATURED_LIMIT" default:"6"`
}

// PasswordConfig tunes the Argon2id hash kept for simulated password changes.
type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STOREFRONT_PASSWORD_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STOREFRONT_PASSWORD_ARGON_TIME" default:"1"`
	ArgonParallelism int `envconfig:"STOREFRONT_PASSWORD_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STOREFRONT_PASSWORD_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STOREFRONT_PASSWORD_ARGON_KEY_LEN" default:"32"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"STOREFRONT_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"STOREFRONT_METRICS_PATH" default:"/metrics"`
}

// DemoUserConfig seeds the account every request acts as when no X-User-Id header is sent.
type DemoUserConfig struct {
	ID      string `envconfig:"STOREFRONT_DEMO_USER_ID" default:"8f5f4d0e-7c1a-4b7e-9a57-3f2f0c6d1b21"`
	Name    string `envconfig:"STOREFRONT_DEMO_USER_NAME" default:"Demo Shopper"`
	Email   string `envconfig:"STOREFRONT_DEMO_USER_EMAIL" default:"demo@storefront.local"`
	Address string `envconfig:"STOREFRONT_DEMO_USER_ADDRESS"`
	Phone   string `envconfig:"STOREFRONT_DEMO_USER_PHONE"`
}

// UserID returns the parsed demo user id; Validate guarantees it parses after Load.
func (d DemoUserConfig) UserID() uuid.UUID {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
