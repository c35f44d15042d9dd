package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Credits   CreditsConfig   `yaml:"credits"`
	Insights  InsightsConfig  `yaml:"insights"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

// TailscaleConfig controls serving the API over a tailnet instead of a
// plain TCP listener.
type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// CreditsConfig controls the generation credit gate.
type CreditsConfig struct {
	Dir             string `yaml:"dir"`
	CooldownMinutes int    `yaml:"cooldown_minutes"`
}

// InsightsConfig controls the periodic insight report.
type InsightsConfig struct {
	Schedule string `yaml:"schedule"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix PLANFORGE_ and underscore-separated paths:
//
//	PLANFORGE_SERVER_HOST, PLANFORGE_SERVER_PORT,
//	PLANFORGE_DB_HOST, PLANFORGE_DB_PORT, PLANFORGE_DB_NAME,
//	PLANFORGE_DB_USER, PLANFORGE_DB_PASSWORD, PLANFORGE_DB_SSLMODE,
//	PLANFORGE_AUTH_API_KEY,
//	PLANFORGE_TS_HOSTNAME, PLANFORGE_TS_STATE_DIR,
//	PLANFORGE_CREDITS_DIR, PLANFORGE_INSIGHTS_SCHEDULE
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLANFORGE_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PLANFORGE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("PLANFORGE_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("PLANFORGE_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("PLANFORGE_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("PLANFORGE_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("PLANFORGE_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("PLANFORGE_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("PLANFORGE_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("PLANFORGE_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("PLANFORGE_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("PLANFORGE_CREDITS_DIR"); v != "" {
		cfg.Credits.Dir = v
	}
	if v := os.Getenv("PLANFORGE_INSIGHTS_SCHEDULE"); v != "" {
		cfg.Insights.Schedule = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Credits.Dir == "" {
		cfg.Credits.Dir = "data"
	}
	if cfg.Credits.CooldownMinutes == 0 {
		cfg.Credits.CooldownMinutes = 60
	}
	if cfg.Insights.Schedule == "" {
		cfg.Insights.Schedule = "0 0 6 * * *"
	}
	if cfg.Tailscale.Hostname == "" {
		cfg.Tailscale.Hostname = "planforge"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	return nil
}
