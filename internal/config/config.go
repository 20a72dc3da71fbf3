// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"
	"uuid62/pkg/uuid62"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, storage backend,
// identifier encoding, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSAllowedOrigins lists the origins allowed by CORS; "*" allows any origin
		CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" env-default:"*" yaml:"corsAllowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"uuid62" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Storage selects the persistence backend of the registry
	Storage struct {
		// Driver is either "memory" or "postgres"
		Driver string `env:"STORAGE_DRIVER" env-default:"memory" yaml:"driver"`
	} `yaml:"storage"`

	// UUID62 controls how identifiers are written and read at the service edge.
	// Switches are phrased so that false is the default, because cleanenv
	// cannot tell an explicit false in the file from a missing value.
	UUID62 struct {
		// CanonicalOnly turns compact identifiers off and uses the canonical form everywhere
		CanonicalOnly bool `env:"UUID62_CANONICAL_ONLY" yaml:"canonicalOnly"`
		// Format is the compact form used for output: base62 or packed
		Format string `env:"UUID62_FORMAT" env-default:"base62" yaml:"format"`
		// Strict rejects canonical hyphenated input instead of accepting it alongside the compact form
		Strict bool `env:"UUID62_STRICT" yaml:"strict"`
	} `yaml:"uuid62"`

	// Registry contains settings of the identifier registry service
	Registry struct {
		// DefaultLimit is the page size used when a list request has no limit
		DefaultLimit uint `env:"REGISTRY_DEFAULT_LIMIT" env-default:"20" yaml:"defaultLimit"`
		// MaxLimit caps the page size of list requests
		MaxLimit uint `env:"REGISTRY_MAX_LIMIT" env-default:"100" yaml:"maxLimit"`
	} `yaml:"registry"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Storage drivers accepted in Storage.Driver.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// AcceptCanonical reports whether canonical input is accepted alongside the
// configured form.
func (c *Config) AcceptCanonical() bool { return !c.UUID62.Strict }

// IDFormat returns the identifier form selected by the UUID62 section.
func (c *Config) IDFormat() (uuid62.Format, error) {
	if c.UUID62.CanonicalOnly {
		return uuid62.FormatCanonical, nil
	}

	f, err := uuid62.ParseFormat(c.UUID62.Format)
	if err != nil {
		return "", fmt.Errorf("invalid uuid62 format: %w", err)
	}

	return f, nil
}

// Validate reports configuration values that cleanenv cannot check by itself.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory, StorageDriverPostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if _, err := c.IDFormat(); err != nil {
		return err
	}

	if c.Registry.DefaultLimit == 0 || c.Registry.DefaultLimit > c.Registry.MaxLimit {
		return fmt.Errorf("registry default limit %d must be between 1 and max limit %d",
			c.Registry.DefaultLimit, c.Registry.MaxLimit)
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled and
// validated Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config filled from environment variables and defaults
// only, for commands that can run without a config file.
func Default() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
