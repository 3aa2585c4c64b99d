package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/smilesofhope/hopecms/internal/assistant"
	"github.com/smilesofhope/hopecms/internal/mailer"
)

// Duration decodes YAML strings like "12h" into a time.Duration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config represents the application configuration.
type Config struct {
	App       ApplicationConfig `yaml:"app"`
	Store     StoreConfig       `yaml:"store"`
	Admin     AdminConfig       `yaml:"admin"`
	Media     MediaConfig       `yaml:"media"`
	Mail      mailer.Config     `yaml:"mail"`
	Assistant assistant.Config  `yaml:"assistant"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return c.Admin.Validate()
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

// Address returns the HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// StoreConfig holds the persistence paths: the embedded database file and
// the scratch directory for draft recovery.
type StoreConfig struct {
	Path       string `yaml:"path"`
	ScratchDir string `yaml:"scratch_dir"`
}

// Validate validates the store configuration.
func (c *StoreConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.ScratchDir, validation.Required),
	)
}

// AdminConfig holds the operator credentials and session settings. The
// password is stored as a bcrypt hash; the default hash corresponds to the
// placeholder admin/admin pair and should be replaced in any real deployment.
type AdminConfig struct {
	Username     string   `yaml:"username"`
	PasswordHash string   `yaml:"password_hash"`
	JWTSecret    string   `yaml:"jwt_secret"`
	SessionTTL   Duration `yaml:"session_ttl"`
}

// Validate validates the admin configuration.
func (c *AdminConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.PasswordHash, validation.Required),
		validation.Field(&c.JWTSecret, validation.Required, validation.Length(16, 0)),
	)
}

// MediaConfig holds the optional asset library settings.
type MediaConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Validate validates the media configuration.
func (c *MediaConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
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
		Store: StoreConfig{
			Path:       "./data/smiles_of_hope.db",
			ScratchDir: "./data/scratch",
		},
		Admin: AdminConfig{
			Username: "admin",
			// bcrypt("admin"), a placeholder pair for local development only.
			PasswordHash: "$2b$10$abcdefghijklmnopqrstuuQaLxbHNyOkst.5hok/MxsNYsoRyHiAq",
			JWTSecret:    "change-me-please-32-bytes-minimum",
			SessionTTL:   Duration(12 * time.Hour),
		},
		Media: MediaConfig{
			Enabled: true,
			Dir:     "./data/assets",
		},
	}
}
