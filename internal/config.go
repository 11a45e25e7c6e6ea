package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ocastel/tooldex/internal/ingest"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Catalog backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Catalog CatalogConfig     `yaml:"catalog"`
	SQLite  SQLiteConfig      `yaml:"sqlite"`
	Auth    AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if c.Catalog.Backend == BackendSQLite {
		if err := c.SQLite.Validate(); err != nil {
			return err
		}
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// CatalogConfig selects the catalog backend and its source.
//
// Backend controls where the record list comes from:
//   - "memory" (default): the CSV source is parsed at startup and held
//     in memory only.
//   - "sqlite": records are loaded from the SQLite store populated by
//     the migrate command.
//
// Source is the delimited export file; with the sqlite backend it is
// optional and only used by refresh/watch. Watch enables the fsnotify
// watcher that re-ingests the source on change.
type CatalogConfig struct {
	Backend   string `yaml:"backend"`
	Source    string `yaml:"source"`
	Delimiter string `yaml:"delimiter"`
	Watch     bool   `yaml:"watch"`
}

// Validate validates the catalog configuration.
func (c *CatalogConfig) Validate() error {
	if c.Backend == "" {
		c.Backend = BackendMemory
	}
	if c.Delimiter == "" {
		c.Delimiter = ingest.DefaultDelimiter
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Backend, validation.Required, validation.In(BackendMemory, BackendSQLite)),
		validation.Field(&c.Delimiter, validation.Length(1, 1)),
	); err != nil {
		return err
	}
	if c.Backend == BackendMemory && c.Source == "" {
		return fmt.Errorf("catalog: backend is %q but source is empty", BackendMemory)
	}
	if c.Watch && c.Source == "" {
		return fmt.Errorf("catalog: watch enabled but source is empty")
	}
	return nil
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled" for backward compatibility.
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Catalog: CatalogConfig{
			Backend:   BackendMemory,
			Source:    "./data/tools.csv",
			Delimiter: ingest.DefaultDelimiter,
			Watch:     true,
		},
		SQLite: SQLiteConfig{
			Path: "./tooldex.db",
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
