// Package config assembles the application configuration from YAML and
// environment variables. Core sections (telegram, webhook, logging,
// rate_limit) are validated by the core package; the database, smtp, and ai
// sections belong to this bot.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/anassar/mudeer/core/config"
	coredatabase "github.com/anassar/mudeer/core/database"
	"github.com/anassar/mudeer/internal/ai"
	"github.com/anassar/mudeer/internal/mailer"
)

// Config is the full application configuration.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
	SMTP     mailer.Config       `yaml:"smtp"`
	AI       ai.Config           `yaml:"ai"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// Load reads configuration from a YAML file, overlays environment variables,
// and validates every section.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates every configuration section and fills defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return err
	}
	if err := cfg.SMTP.Normalize(); err != nil {
		return err
	}
	if err := cfg.AI.Normalize(); err != nil {
		return err
	}
	if cfg.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if cfg.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	return nil
}
