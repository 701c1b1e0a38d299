package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	DB  DBConfig  `yaml:"db"`
	Log LogConfig `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"STUDY_DB_PATH"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"STUDY_LOG_LEVEL"`
	Format string `yaml:"format" env:"STUDY_LOG_FORMAT"`
	Path   string `yaml:"path" env:"STUDY_LOG_PATH"`

	// MaxSizeMB caps the log file; once exceeded only the newest KeepSizeMB remain.
	MaxSizeMB  int `yaml:"max_size_mb" env:"STUDY_LOG_MAX_SIZE_MB"`
	KeepSizeMB int `yaml:"keep_size_mb" env:"STUDY_LOG_KEEP_SIZE_MB"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DB: DBConfig{
			Path: "study.db",
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  6,
			KeepSizeMB: 5,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
// Environment variables take precedence over the file.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("STUDY_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Log.KeepSizeMB <= 0 || c.Log.MaxSizeMB <= c.Log.KeepSizeMB {
		return fmt.Errorf("log sizes must satisfy 0 < keep_size_mb < max_size_mb, got keep=%d max=%d", c.Log.KeepSizeMB, c.Log.MaxSizeMB)
	}
	if c.DB.Path == "" {
		return fmt.Errorf("db path is required")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
