// Package config provides configuration management for Haik.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/haikapp/haik/internal/recommend"
)

// Config represents the application configuration.
type Config struct {
	Recommend recommend.Config `mapstructure:"recommend"`
	Fetch     FetchConfig      `mapstructure:"fetch"`
	Server    ServerConfig     `mapstructure:"server"`
	Data      DataConfig       `mapstructure:"data"`
	Logging   LoggingConfig    `mapstructure:"logging"`
}

// FetchConfig configures the amenity fetch stage.
type FetchConfig struct {
	RadiusMeters  float64       `mapstructure:"radius_meters"`
	ResultLimit   int           `mapstructure:"result_limit"`
	MaxConcurrent int           `mapstructure:"max_concurrent"`
	LookupTimeout time.Duration `mapstructure:"lookup_timeout"`
}

// ServerConfig configures the HTTP facade.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DataConfig configures reference data sources. Empty PricesFile means
// the bundled dataset.
type DataConfig struct {
	PricesFile string `mapstructure:"prices_file"`
	PricesDB   string `mapstructure:"prices_db"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".haik")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "haik"))
			v.AddConfigPath(home)
		}
	}

	// Config file is optional; defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("HAIK")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	rec := recommend.DefaultConfig()
	v.SetDefault("recommend.weights.lifestyle", rec.Weights.Lifestyle)
	v.SetDefault("recommend.weights.priority", rec.Weights.Priority)
	v.SetDefault("recommend.weights.transport", rec.Weights.Transport)
	v.SetDefault("recommend.weights.price", rec.Weights.Price)
	v.SetDefault("recommend.caps.activity", rec.Caps.Activity)
	v.SetDefault("recommend.caps.full_services", rec.Caps.FullServices)
	v.SetDefault("recommend.caps.services", rec.Caps.Services)
	v.SetDefault("recommend.caps.schools", rec.Caps.Schools)
	v.SetDefault("recommend.caps.malls", rec.Caps.Malls)
	v.SetDefault("recommend.caps.entertainment", rec.Caps.Entertainment)
	v.SetDefault("recommend.anchor_window_meters", rec.AnchorWindowMeters)
	v.SetDefault("recommend.shortlist_size", rec.ShortlistSize)
	v.SetDefault("recommend.top_k", rec.TopK)
	v.SetDefault("recommend.first_priority_weight", rec.FirstPriorityWeight)
	v.SetDefault("recommend.second_priority_weight", rec.SecondPriorityWeight)

	v.SetDefault("fetch.radius_meters", 3500.0)
	v.SetDefault("fetch.result_limit", 40)
	v.SetDefault("fetch.max_concurrent", 6)
	v.SetDefault("fetch.lookup_timeout", 8*time.Second)

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("data.prices_file", "")
	v.SetDefault("data.prices_db", "haik-prices.db")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Recommend.Validate(); err != nil {
		return err
	}
	if c.Fetch.MaxConcurrent <= 0 {
		return fmt.Errorf("fetch.max_concurrent must be positive, got %d", c.Fetch.MaxConcurrent)
	}
	if c.Fetch.ResultLimit <= 0 {
		return fmt.Errorf("fetch.result_limit must be positive, got %d", c.Fetch.ResultLimit)
	}
	if c.Fetch.RadiusMeters <= 0 {
		return fmt.Errorf("fetch.radius_meters must be positive, got %v", c.Fetch.RadiusMeters)
	}
	if c.Fetch.LookupTimeout < 0 {
		return fmt.Errorf("fetch.lookup_timeout must not be negative, got %v", c.Fetch.LookupTimeout)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
