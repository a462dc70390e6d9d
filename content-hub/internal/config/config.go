package config

import (
	"fmt"
	"time"

	infraconfig "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/config"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/profiling"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/tracing"
)

const (
	defaultServerHost     = "0.0.0.0"
	defaultBackendTimeout = 30 * time.Second
)

type Config struct {
	Debug     bool                      `env:"APP_DEBUG" yaml:"debug"`
	Backend   BackendConfig             `yaml:"backend"`
	Server    infraconfig.ServerConfig  `yaml:"server"`
	Redis     infraconfig.RedisConfig   `yaml:"redis"`
	Logging   infraconfig.LoggingConfig `yaml:"logging"`
	Profiling profiling.Config          `yaml:"profiling"`
	Tracing   tracing.Config            `yaml:"tracing"`
}

// BackendConfig locates the content REST API. An empty BaseURL switches the
// hub to offline mode.
type BackendConfig struct {
	BaseURL string        `env:"CONTENT_API_URL"     yaml:"base_url"`
	Token   string        `env:"CONTENT_API_TOKEN"   yaml:"token"`
	Timeout time.Duration `env:"CONTENT_API_TIMEOUT" yaml:"timeout"`
}

// Offline reports whether no backend is configured.
func (c *Config) Offline() bool { return c.Backend.BaseURL == "" }

func (c *Config) Validate() error {
	if err := infraconfig.ValidatePort("server.port", c.Server.Port); err != nil {
		return err
	}
	if err := infraconfig.ValidateOptionalURL("backend.base_url", c.Backend.BaseURL); err != nil {
		return err
	}
	if c.Backend.Timeout < 0 {
		return &infraconfig.ValidationError{Field: "backend.timeout", Message: "must not be negative"}
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return &infraconfig.ValidationError{Field: "tracing.sample_ratio", Message: "must be between 0 and 1"}
	}
	return c.Logging.Validate()
}

func Load(path string) (*Config, error) {
	cfg, err := infraconfig.LoadWithDefaults(path, setDefaults)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultServerHost
	}
	cfg.Server.SetDefaults()
	cfg.Logging.SetDefaults()
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}
}
